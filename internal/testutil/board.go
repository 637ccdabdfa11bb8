package testutil

import "github.com/mcoot/connect4-arena/internal/model"

// MustBoard builds a board from rows given top row first, the way boards are
// drawn. It panics on malformed input since it is only used with literals.
func MustBoard(rows ...string) model.Board {
	if len(rows) != model.Height {
		panic("testutil.MustBoard: wrong number of rows")
	}
	s := ""
	for i := len(rows) - 1; i >= 0; i-- {
		s += rows[i] + "-"
	}
	b, err := model.ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
