package models

// InsertResult mirrors the acknowledgement MongoDB returns for an insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the acknowledgement MongoDB returns for an update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the acknowledgement MongoDB returns for a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// AdminStats is the dashboard summary served by GET /admin-stats.
type AdminStats struct {
	Users        int64 `json:"users"`
	Admins       int64 `json:"admins"`
	Events       int64 `json:"events"`
	Segments     int64 `json:"segments"`
	Blogs        int64 `json:"blogs"`
	Applications int64 `json:"applications"`
}
