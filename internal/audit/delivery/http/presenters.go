package http

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/pkg/response"
)

type listEventsReq struct {
	EventType string
	Subject   string
	Limit     int
	Offset    int
}

func (r listEventsReq) toInput() audit.ListInput {
	return audit.ListInput{
		EventType: r.EventType,
		Subject:   r.Subject,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

type eventResp struct {
	ID        string            `json:"id"`
	EventType string            `json:"event_type"`
	Subject   string            `json:"subject,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	Path      string            `json:"path,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Total  int64       `json:"total"`
}

func (h *handler) newListEventsResp(o audit.ListOutput) listEventsResp {
	events := make([]eventResp, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, h.newEventResp(e))
	}
	return listEventsResp{
		Events: events,
		Total:  o.Total,
	}
}

func (h *handler) newEventResp(e model.AuthEvent) eventResp {
	return eventResp{
		ID:        e.ID,
		EventType: e.EventType,
		Subject:   e.Subject,
		ClientIP:  e.ClientIP,
		UserAgent: e.UserAgent,
		Path:      e.Path,
		Reason:    e.Reason,
		CreatedAt: response.DateTime(e.CreatedAt),
	}
}
