package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func prepareSSE(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
}

// writeEvent sends one event. Strings are written as-is, anything else as JSON.
// Every line of the payload gets its own data field so provider text cannot end
// the event early.
func writeEvent(w http.ResponseWriter, flusher http.Flusher, event string, v interface{}) error {
	var payload string
	switch data := v.(type) {
	case string:
		payload = data
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		payload = string(b)
	}

	var b strings.Builder
	if event != "" {
		b.WriteString("event: ")
		b.WriteString(event)
		b.WriteByte('\n')
	}
	for _, line := range strings.Split(lineBreaks.Replace(payload), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	flusher.Flush()
	return nil
}
