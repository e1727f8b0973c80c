package models

// Event represents a catalog change published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Action    string `json:"action"`    // Action describes the change, e.g. "user.registered" or "movie.created".
	EntityID  string `json:"entity_id"` // EntityID is the identifier of the affected user or movie.
}
