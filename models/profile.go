package models

// ProfileRecord is a cached mirror of a user profile, refreshed wholesale
// from the remote service. The engine treats profiles as read-only display
// data; it never edits them.
type ProfileRecord struct {
	// UserID is the unique identifier of the profile owner.
	UserID int64 `json:"user_id"`

	// Name is the display name shown on the profile card.
	Name string `json:"name"`

	// Gender is the self-reported gender of the profile owner.
	Gender string `json:"gender"`

	// Age is the profile owner's age in years.
	Age int `json:"age"`

	// Bio is the free-form profile description.
	Bio string `json:"bio"`
}

// TableName returns the name of the database table
// associated with the ProfileRecord model.
func (p ProfileRecord) TableName() string {
	return "profiles"
}
