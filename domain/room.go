// Package domain contains the core concepts of the chat system.
// No storage, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"
)

type RoomKind string

const (
	RoomDirect RoomKind = "direct"
	RoomGroup  RoomKind = "group"
)

// Room is a conversation between one or more members.
//
// A direct room always has exactly two distinct members and its identity is
// the ascending-sorted member pair: at most one direct room exists per pair.
// A group room has at least one member; removing the last member destroys
// the room.
type Room struct {
	ID            string    `json:"id"`
	Name          string    `json:"name,omitempty"` // empty for direct rooms
	Kind          RoomKind  `json:"kind"`
	Members       []string  `json:"members"` // unique; sorted ascending for direct rooms
	CreatedAt     time.Time `json:"createdAt"`
	LastMessageAt time.Time `json:"lastMessageAt"` // monotonically non-decreasing
}

func (r Room) HasMember(userID string) bool {
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// SortPair returns the canonical ascending order of a direct-room member pair.
func SortPair(a, b string) (string, string) {
	if strings.Compare(a, b) > 0 {
		return b, a
	}
	return a, b
}
