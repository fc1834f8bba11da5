package leaderboard

import (
	"context"

	"game-admin/internal/circuitbreaker"
	"game-admin/internal/redis"
)

// guardedBoard sends every board call through a circuit breaker so an
// unreachable Redis costs one fast failure instead of a timeout per call
type guardedBoard struct {
	board Board
	cb    *circuitbreaker.Breaker
}

// Guard wraps board with cb
func Guard(board Board, cb *circuitbreaker.Breaker) Board {
	return &guardedBoard{board: board, cb: cb}
}

func (g *guardedBoard) ZAddGreater(ctx context.Context, key, member string, score float64) (added bool, err error) {
	err = g.cb.Execute(func() error {
		added, err = g.board.ZAddGreater(ctx, key, member, score)
		return err
	})
	return added, err
}

func (g *guardedBoard) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) (members []redis.ScoredMember, err error) {
	err = g.cb.Execute(func() error {
		members, err = g.board.ZRevRangeWithScores(ctx, key, start, stop)
		return err
	})
	return members, err
}

func (g *guardedBoard) ZRevRank(ctx context.Context, key, member string) (rank int64, found bool, err error) {
	err = g.cb.Execute(func() error {
		rank, found, err = g.board.ZRevRank(ctx, key, member)
		return err
	})
	return rank, found, err
}

func (g *guardedBoard) ZScore(ctx context.Context, key, member string) (score float64, found bool, err error) {
	err = g.cb.Execute(func() error {
		score, found, err = g.board.ZScore(ctx, key, member)
		return err
	})
	return score, found, err
}

func (g *guardedBoard) ZCard(ctx context.Context, key string) (n int64, err error) {
	err = g.cb.Execute(func() error {
		n, err = g.board.ZCard(ctx, key)
		return err
	})
	return n, err
}

func (g *guardedBoard) Del(ctx context.Context, keys ...string) (n int64, err error) {
	err = g.cb.Execute(func() error {
		n, err = g.board.Del(ctx, keys...)
		return err
	})
	return n, err
}
