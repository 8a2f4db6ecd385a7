package handlers

import (
	"ulascansenturk/localinfo-service/internal/display"
	"ulascansenturk/localinfo-service/internal/localinfo"
	"ulascansenturk/localinfo-service/internal/service"
)

// LocalInfoResponse is the rendered view: the three display regions plus the
// pipeline state they were taken in.
type LocalInfoResponse struct {
	Container      string `json:"container"`
	PostalCode     string `json:"postal_code,omitempty"`
	UTCOffsetHours *int   `json:"utc_offset_hours,omitempty"`
	Time           string `json:"time"`
	Conditions     string `json:"conditions"`
	Icon           string `json:"icon"`
	State          string `json:"state"`
	Stage          string `json:"stage,omitempty"`
	Error          string `json:"error,omitempty"`
}

func newLocalInfoResponse(view *localinfo.View, outcome service.Outcome) LocalInfoResponse {
	snapshot := view.Surface.Snapshot()

	resp := LocalInfoResponse{
		Container:  snapshot.ContainerID,
		Time:       snapshot.Time,
		Conditions: snapshot.Conditions,
		Icon:       snapshot.Icon,
		State:      string(outcome.State),
		Stage:      string(outcome.Stage),
		Error:      string(outcome.Kind),
	}

	if view.Matched {
		offset := view.Query.UTCOffsetHours
		resp.PostalCode = view.Query.PostalCode
		resp.UTCOffsetHours = &offset
	}

	return resp
}

// OutcomeEvent is the final event of a stream.
type OutcomeEvent struct {
	State      string `json:"state"`
	Stage      string `json:"stage,omitempty"`
	Error      string `json:"error,omitempty"`
	Conditions string `json:"conditions"`
}

func newOutcomeEvent(outcome service.Outcome) OutcomeEvent {
	return OutcomeEvent{
		State:      string(outcome.State),
		Stage:      string(outcome.Stage),
		Error:      string(outcome.Kind),
		Conditions: outcome.Message(),
	}
}

type regionUpdate struct {
	region display.Region
	text   string
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
