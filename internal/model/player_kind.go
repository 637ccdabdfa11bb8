package model

import "fmt"

// PlayerKind selects how a player decides its moves
type PlayerKind string

// Player kind constants
const (
	PlayerKindSearch PlayerKind = "search"
	PlayerKindGreedy PlayerKind = "greedy"
	PlayerKindRandom PlayerKind = "random"
	PlayerKindHuman  PlayerKind = "human"
)

// PlayerKindDisplayName returns a human-readable label for a kind
func PlayerKindDisplayName(kind PlayerKind) string {
	switch kind {
	case PlayerKindSearch:
		return "Search"
	case PlayerKindGreedy:
		return "Greedy"
	case PlayerKindRandom:
		return "Random"
	case PlayerKindHuman:
		return "Human"
	default:
		return string(kind)
	}
}

// ValidPlayerKinds returns all valid player kinds
func ValidPlayerKinds() []PlayerKind {
	return []PlayerKind{PlayerKindSearch, PlayerKindGreedy, PlayerKindRandom, PlayerKindHuman}
}

// ParsePlayerKind validates a kind name
func ParsePlayerKind(name string) (PlayerKind, error) {
	for _, kind := range ValidPlayerKinds() {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownPlayerKind)
}
