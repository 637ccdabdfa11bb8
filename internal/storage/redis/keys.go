package redis

import "fmt"

// Key prefix for all arena data
const keyPrefix = "c4arena"

// Hash fields of a standing
const (
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldDraws  = "draws"
)

// standingKey returns the Redis key for a player's standing hash
func standingKey(player string) string {
	return fmt.Sprintf("%s:standing:%s", keyPrefix, player)
}

// playersIndexKey returns the Redis key for the SET of players with a standing
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
