package player_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/services/player"
)

type HumanStrategySuite struct {
	suite.Suite
	out *bytes.Buffer
	ctx context.Context
}

func TestHumanStrategySuite(t *testing.T) {
	suite.Run(t, new(HumanStrategySuite))
}

func (s *HumanStrategySuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *HumanStrategySuite) strategy(input string) *player.HumanStrategy {
	return player.NewHumanStrategy(bufio.NewReader(strings.NewReader(input)), s.out)
}

func (s *HumanStrategySuite) TestReadsLegalIndex() {
	index, err := s.strategy("4\n").Decide(s.ctx, model.Board{}, model.Red)
	s.Require().NoError(err)
	s.Equal(4, index)
	s.Contains(s.out.String(), "red (X) to move")
	s.Contains(s.out.String(), "[3 2 4 1 5 0 6]")
}

func (s *HumanStrategySuite) TestRepromptsOnBadInput() {
	index, err := s.strategy("abc\n12\n\n5\n").Decide(s.ctx, model.Board{}, model.Blue)
	s.Require().NoError(err)
	s.Equal(5, index)

	out := s.out.String()
	s.Contains(out, `"abc" is not a cell index`)
	s.Contains(out, "cannot play there")
	s.Equal(4, strings.Count(out, "to move"))
}

func (s *HumanStrategySuite) TestAcceptsFinalLineWithoutNewline() {
	index, err := s.strategy("2").Decide(s.ctx, model.Board{}, model.Red)
	s.Require().NoError(err)
	s.Equal(2, index)
}

func (s *HumanStrategySuite) TestInputClosed() {
	_, err := s.strategy("").Decide(s.ctx, model.Board{}, model.Red)
	s.ErrorIs(err, model.ErrInputClosed)

	_, err = s.strategy("9").Decide(s.ctx, model.Board{}, model.Red)
	s.ErrorIs(err, model.ErrInputClosed)
}

func (s *HumanStrategySuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.strategy("3\n").Decide(ctx, model.Board{}, model.Red)
	s.ErrorIs(err, context.Canceled)
}
