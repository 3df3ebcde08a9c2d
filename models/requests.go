package models

import "time"

// SubmitSwipeRequest is the body of a single swipe submission to the remote
// service. The client-assigned ID travels with the record so repeated
// submissions of the same decision stay idempotent on the server.
type SubmitSwipeRequest struct {
	ID           string      `json:"id"`
	UserID       int64       `json:"user_id"`
	TargetUserID int64       `json:"target_user_id"`
	Action       SwipeAction `json:"action"`
	Timestamp    time.Time   `json:"timestamp"`
}

// SubmitSwipeResponse is the remote acknowledgement of a swipe submission.
type SubmitSwipeResponse struct {
	// ID is the identifier the remote stored the record under.
	ID string `json:"id"`
}
