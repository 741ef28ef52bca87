package domain

import "time"

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// Message is a single entry in a room.
//
// ReadBy always contains the author (a message is implicitly read by its
// sender) and only ever grows.
type Message struct {
	ID        string      `json:"id"`
	RoomID    string      `json:"roomId"`
	UserID    string      `json:"userId"` // author
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	Lang      string      `json:"lang,omitempty"` // detected ISO-639-1 code, best effort
	ReadBy    []string    `json:"readBy"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (m Message) ReadByUser(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
