package cli

import (
	"fmt"
	"io"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/match"
)

// newEventPrinter returns an observer that draws the board as a match goes
func newEventPrinter(w io.Writer) match.Observer {
	return func(event model.Event) {
		switch payload := event.Payload.(type) {
		case model.MatchStartedPayload:
			_, _ = fmt.Fprintf(w, "Match %s: %s (X) vs %s (O)\n", event.MatchID, payload.Red, payload.Blue)
			_, _ = fmt.Fprint(w, RenderBoard(model.Board{}))
		case model.MovePlayedPayload:
			_, _ = fmt.Fprintf(w, "\n%d. %s (%c) plays %d\n", payload.Ply, payload.Player, payload.Side.Symbol(), payload.Index)
			_, _ = fmt.Fprint(w, RenderBoard(payload.Board))
		case model.MatchFinishedPayload:
			_, _ = fmt.Fprintln(w)
		}
	}
}
