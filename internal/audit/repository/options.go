package repository

// CreateEventOptions carries the fields of a new auth event row.
type CreateEventOptions struct {
	EventType string
	Subject   string
	ClientIP  string
	UserAgent string
	Path      string
	Reason    string
}

// ListEventsOptions filters and paginates the event query.
type ListEventsOptions struct {
	EventType string
	Subject   string
	Limit     int
	Offset    int
}
