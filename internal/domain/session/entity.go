package session

type (
	// Session is the authenticated user's bearer token plus cached profile
	// fields, resolved by the guard and injected into every service call.
	// The token is opaque passthrough material; nothing here validates it.
	Session struct {
		Token    string
		UserID   int64
		Email    string
		Username string
	}

	// Profile is what the backend's who-am-I endpoint returns.
	Profile struct {
		ID       int64
		Username string
	}

	// Persisted is the slice of the session kept in client-local storage
	// between runs: created at login, cleared only at explicit logout.
	Persisted struct {
		Token    string `json:"auth_token"`
		Email    string `json:"user_email"`
		Username string `json:"username,omitempty"`
	}
)
