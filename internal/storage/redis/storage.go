package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/connect4-arena/internal/model"
	"github.com/mcoot/connect4-arena/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) RecordResult(ctx context.Context, result *model.MatchResult) error {
	redField, blueField := fieldDraws, fieldDraws
	switch result.Outcome {
	case model.OutcomeRedWon:
		redField, blueField = fieldWins, fieldLosses
	case model.OutcomeBlueWon:
		redField, blueField = fieldLosses, fieldWins
	}

	// MULTI/EXEC so both sides of the result land together
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, standingKey(result.Red), redField, 1)
	pipe.HIncrBy(ctx, standingKey(result.Blue), blueField, 1)
	pipe.SAdd(ctx, playersIndexKey(), result.Red, result.Blue)
	if s.cfg.StandingTTL > 0 {
		pipe.Expire(ctx, standingKey(result.Red), s.cfg.StandingTTL)
		pipe.Expire(ctx, standingKey(result.Blue), s.cfg.StandingTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetStanding(ctx context.Context, player string) (*model.Standing, error) {
	fields, err := s.client.HGetAll(ctx, standingKey(player)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrStandingNotFound
	}
	return decodeStanding(player, fields)
}

func (s *Storage) ListStandings(ctx context.Context) ([]model.Standing, error) {
	players, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return []model.Standing{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(players))
	for i, player := range players {
		cmds[i] = pipe.HGetAll(ctx, standingKey(player))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	standings := make([]model.Standing, 0, len(players))
	var expired []any
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// the hash expired but the index entry did not
			expired = append(expired, players[i])
			continue
		}
		st, err := decodeStanding(players[i], fields)
		if err != nil {
			return nil, err
		}
		standings = append(standings, *st)
	}

	if len(expired) > 0 {
		if err := s.client.SRem(ctx, playersIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}

	model.SortStandings(standings)
	return standings, nil
}

func (s *Storage) ResetStandings(ctx context.Context) error {
	players, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(players)+1)
	for _, player := range players {
		keys = append(keys, standingKey(player))
	}
	keys = append(keys, playersIndexKey())
	return s.client.Del(ctx, keys...).Err()
}

func decodeStanding(player string, fields map[string]string) (*model.Standing, error) {
	st := &model.Standing{Player: player}
	for field, target := range map[string]*int{
		fieldWins:   &st.Wins,
		fieldLosses: &st.Losses,
		fieldDraws:  &st.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("standing %s field %s: %w", player, field, err)
		}
		*target = n
	}
	return st, nil
}
