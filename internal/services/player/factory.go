package player

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/connect4-arena/internal/dependencies/random"
	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/search"
)

// Factory builds fresh players. Adapters are single-use, strategies are not:
// every adapter built by one Factory shares its engine and input.
type Factory struct {
	engine *search.Engine
	random random.Random
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewFactory creates a new player Factory. in and out are only used by human players.
func NewFactory(engine *search.Engine, rnd random.Random, in io.Reader, out io.Writer, logger *slog.Logger) *Factory {
	if in == nil {
		in = eofReader{}
	}
	if out == nil {
		out = io.Discard
	}
	return &Factory{
		engine: engine,
		random: rnd,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// WithRandom returns a copy of the factory whose random players draw from rnd
func (f *Factory) WithRandom(rnd random.Random) *Factory {
	c := *f
	c.random = rnd
	return &c
}

// New builds an uninitialized player of the given kind. An empty name defaults
// to the kind.
func (f *Factory) New(kind model.PlayerKind, name string) (*Adapter, error) {
	if name == "" {
		name = string(kind)
	}

	var strategy Strategy
	switch kind {
	case model.PlayerKindSearch:
		strategy = NewSearchStrategy(f.engine)
	case model.PlayerKindGreedy:
		strategy = NewGreedyStrategy()
	case model.PlayerKindRandom:
		strategy = NewRandomStrategy(f.random)
	case model.PlayerKindHuman:
		strategy = NewHumanStrategy(f.in, f.out)
	default:
		return nil, fmt.Errorf("%q: %w", kind, model.ErrUnknownPlayerKind)
	}
	return NewAdapter(name, kind, strategy, f.logger), nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
