package models

import "time"

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"` // user's free-text question; may be absent
}

// ChatResponse is returned for every /api/chat outcome, errors included.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Exchange is one answered (or failed) chat request, kept for auditing only.
type Exchange struct {
	ID        string    `bson:"_id"        json:"id"`
	RequestID string    `bson:"request_id" json:"request_id"`
	Message   string    `bson:"message"    json:"message"` // normalised message
	Day       string    `bson:"day"        json:"day"`     // resolved weekday
	Reply     string    `bson:"reply"      json:"reply"`
	Failed    bool      `bson:"failed"     json:"failed"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
