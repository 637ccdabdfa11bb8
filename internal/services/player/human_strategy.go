package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/board"
)

// HumanStrategy asks a person for moves. It prompts on out and reads one cell
// index per line from in, prompting again until a legal index arrives.
type HumanStrategy struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHumanStrategy creates a new HumanStrategy. Strategies reading the same
// terminal should share one bufio.Reader.
func NewHumanStrategy(in *bufio.Reader, out io.Writer) *HumanStrategy {
	return &HumanStrategy{in: in, out: out}
}

// Decide prompts until a legal move is entered
func (s *HumanStrategy) Decide(ctx context.Context, b model.Board, side model.Side) (int, error) {
	moves := board.Moves(&b)
	if len(moves) == 0 {
		return model.NoMove, model.ErrNoLegalMove
	}

	choices := make([]string, len(moves))
	for i, index := range moves {
		choices[i] = strconv.Itoa(index)
	}

	for {
		if err := ctx.Err(); err != nil {
			return model.NoMove, err
		}

		_, _ = fmt.Fprintf(s.out, "%s (%c) to move, choose one of [%s]: ", side, side.Symbol(), strings.Join(choices, " "))

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return model.NoMove, fmt.Errorf("reading move: %w", err)
		}
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			return model.NoMove, model.ErrInputClosed
		}

		index, convErr := strconv.Atoi(input)
		if convErr != nil {
			_, _ = fmt.Fprintf(s.out, "%q is not a cell index\n", input)
		} else if moveErr := board.ValidateMove(&b, index); moveErr != nil {
			_, _ = fmt.Fprintf(s.out, "cannot play there: %v\n", moveErr)
		} else {
			return index, nil
		}

		if err != nil {
			// the last line had no newline and the input is now exhausted
			return model.NoMove, model.ErrInputClosed
		}
	}
}
