package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventAccountUpdated    EventType = "account_updated"
	EventAccountDeleted    EventType = "account_deleted"
	EventFavoriteAdded     EventType = "favorite_added"
	EventFavoriteRemoved   EventType = "favorite_removed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	AccountID string    `json:"account_id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// AccountUpdatedPayload lists which fields an update touched.
type AccountUpdatedPayload struct {
	Fields      []string `json:"fields"`
	OldUsername string   `json:"old_username,omitempty"`
}

// FavoritePayload names the movie added to or removed from a favorites list.
type FavoritePayload struct {
	MovieID string `json:"movie_id"`
	Title   string `json:"title,omitempty"`
}
