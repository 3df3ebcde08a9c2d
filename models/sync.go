package models

// SyncMode is the last known connectivity state of the sync coordinator.
// It is advisory: UI collaborators consult it to decide whether to show an
// offline indicator, but push and pull always attempt the remote call
// regardless of the current mode.
type SyncMode string

const (
	// ModeOnline means the last remote interaction succeeded.
	ModeOnline SyncMode = "online"
	// ModeOffline means the last remote interaction failed.
	ModeOffline SyncMode = "offline"
)

// SyncReport summarises a batch push pass. A single record's failure never
// aborts the pass, so both counters can be non-zero at once.
type SyncReport struct {
	// Pushed counts records accepted by the remote and marked synced.
	Pushed int `json:"pushed"`
	// Failed counts records whose submission failed; they stay pending
	// and become eligible for the next pass.
	Failed int `json:"failed"`
}
