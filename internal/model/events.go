package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchStarted  EventType = "match_started"
	EventMovePlayed    EventType = "move_played"
	EventMatchFinished EventType = "match_finished"
)

// Event is the base structure for all match events
type Event struct {
	Type      EventType
	Timestamp time.Time
	MatchID   MatchID
	Payload   any // Type-specific data
}

// MatchStartedPayload contains data for match started events
type MatchStartedPayload struct {
	Red  string
	Blue string
}

// MovePlayedPayload contains data for move played events
type MovePlayedPayload struct {
	Ply    int // 1-based
	Side   Side
	Player string
	Index  int
	Board  Board // Canonical board after the move
}

// MatchFinishedPayload contains data for match finished events
type MatchFinishedPayload struct {
	Result *MatchResult
}
