package response

const (
	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// CodeOK is the error_code for successful responses.
	CodeOK = 0
	// MessageOK is the message for successful responses.
	MessageOK = "Success"
	// MessageUnauthorized is the generic body for rejected credentials.
	// Kept deliberately vague so callers cannot probe why a token failed.
	MessageUnauthorized = "invalid token"
	// MessageInternal is the generic body for unexpected failures.
	MessageInternal = "Internal server error"
)
