package token

// IntrospectInput carries the raw token to inspect.
type IntrospectInput struct {
	Token string
}

// IntrospectOutput mirrors the shape of an RFC 7662 introspection response.
// All claim fields are zero when Active is false.
type IntrospectOutput struct {
	Active    bool
	Subject   string
	Username  string
	Roles     []string
	Issuer    string
	TokenID   string
	IssuedAt  int64
	ExpiresAt int64
}

// RevokeInput carries the raw token to revoke.
type RevokeInput struct {
	Token string
}
