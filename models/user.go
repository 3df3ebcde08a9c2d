package models

// Credentials carries the login data sent to the remote service at session
// start. The engine itself only needs the user identifier that comes back;
// account management lives entirely on the server side.
type Credentials struct {
	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the account password, sent only over the login call.
	Password string `json:"password"`
}
