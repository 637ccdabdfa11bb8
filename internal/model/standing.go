package model

import "sort"

// Standing is a player's aggregate record across recorded matches
type Standing struct {
	Player string `json:"player"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// Played returns the number of recorded matches
func (s Standing) Played() int {
	return s.Wins + s.Losses + s.Draws
}

// SortStandings orders by wins (desc), then draws (desc), then player name
func SortStandings(standings []Standing) {
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Draws != b.Draws {
			return a.Draws > b.Draws
		}
		return a.Player < b.Player
	})
}
