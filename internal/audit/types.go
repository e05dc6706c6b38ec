package audit

import "auth-srv/internal/model"

// RecordInput describes one authentication event to record.
type RecordInput struct {
	EventType string
	Subject   string
	ClientIP  string
	UserAgent string
	Path      string
	Reason    string
}

// ListInput filters the audit trail.
type ListInput struct {
	EventType string
	Subject   string
	Limit     int
	Offset    int
}

// ListOutput is the paginated query result.
type ListOutput struct {
	Events []model.AuthEvent
	Total  int64
}
