package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

var errorCodes = map[int]struct {
	code  string
	title string
}{
	http.StatusBadRequest:          {"BAD_REQUEST", "Bad Request"},
	http.StatusNotFound:            {"NOT_FOUND", "Not Found"},
	http.StatusMethodNotAllowed:    {"METHOD_NOT_ALLOWED", "Method Not Allowed"},
	http.StatusInternalServerError: {"INTERNAL_ERROR", "Internal Server Error"},
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	known, ok := errorCodes[code]
	if !ok {
		known = errorCodes[http.StatusInternalServerError]
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   known.code,
				Detail: message,
				Status: code,
				Title:  known.title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
