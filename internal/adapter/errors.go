package adapter

import "errors"

// Sentinel errors describing why a remote interaction failed. The sync
// coordinator treats all of them as "submission failed, retry later"; they
// are distinguished only at the log layer and in tests.
var (
	// ErrUnauthorized is returned when the remote rejects the session
	// token (HTTP 401).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRejected is returned when the remote refuses the request itself
	// (any other 4xx). The local decision stands regardless.
	ErrRejected = errors.New("request rejected by remote")

	// ErrUnavailable is returned for transport failures and 5xx responses:
	// the remote could not process the request at all.
	ErrUnavailable = errors.New("remote unavailable")
)
