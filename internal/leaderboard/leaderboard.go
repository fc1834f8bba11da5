// Package leaderboard keeps per-application high score tables.
//
// SQL storage is the durable record and decides whether a submission beats
// the player's best. When Redis is configured, each board is mirrored into
// the sorted set lb:<appId> and reads are served from it; any Redis failure
// falls back to SQL. An empty sorted set is rebuilt from SQL on first read.
// A board whose mirror write failed is dropped, or marked stale when even the
// drop fails, and rebuilt before it is read again.
package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/pagination"
	"game-admin/internal/redis"
	"game-admin/internal/storage"
)

const (
	keyPrefix     = "lb:"
	warmBatchSize = 500

	// MaxScore is the largest score a sorted set holds exactly
	MaxScore int64 = 1<<53 - 1
)

// Store is the part of storage used for scores
type Store interface {
	UpsertScore(ctx context.Context, score *storage.Score) (bool, error)
	GetScore(ctx context.Context, appID, playerID string) (*storage.Score, error)
	ListTopScores(ctx context.Context, appID string, limit, offset int) ([]*storage.Score, int, error)
	GetScoreRank(ctx context.Context, appID, playerID string) (int, *storage.Score, error)
	DeleteScores(ctx context.Context, appID string) (int64, error)
}

// Board is the sorted-set surface of the Redis client
type Board interface {
	ZAddGreater(ctx context.Context, key, member string, score float64) (bool, error)
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.ScoredMember, error)
	ZRevRank(ctx context.Context, key, member string) (int64, bool, error)
	ZScore(ctx context.Context, key, member string) (float64, bool, error)
	ZCard(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, keys ...string) (int64, error)
}

// Entry is one row of a leaderboard
type Entry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Score    int64  `json:"score"`
}

// SubmitResult reports the player's best score after a submission
type SubmitResult struct {
	Best     int64 `json:"best"`
	Improved bool  `json:"improved"`
}

// Service implements the leaderboard operations
type Service struct {
	store  Store
	board  Board
	logger logging.Logger

	mu    sync.Mutex
	stale map[string]bool
}

// New creates a leaderboard service. board may be nil to serve everything
// from SQL.
func New(store Store, board Board) *Service {
	return &Service{
		store:  store,
		board:  board,
		stale:  make(map[string]bool),
		logger: logging.GetGlobalLogger().WithFields(logging.String("component", "leaderboard")),
	}
}

func boardKey(appID string) string {
	return keyPrefix + appID
}

// Submit records score for the player if it beats their best
func (s *Service) Submit(ctx context.Context, appID, playerID string, score int64, extra string) (*SubmitResult, error) {
	if score < 0 || score > MaxScore {
		return nil, errors.ValidationError(fmt.Sprintf("score must be between 0 and %d", MaxScore))
	}

	improved, err := s.store.UpsertScore(ctx, &storage.Score{
		AppID:    appID,
		PlayerID: playerID,
		Score:    score,
		Extra:    extra,
	})
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{Best: score, Improved: improved}
	if !improved {
		current, err := s.store.GetScore(ctx, appID, playerID)
		if err != nil {
			return nil, err
		}
		result.Best = current.Score
	}

	if s.board != nil {
		if _, err := s.board.ZAddGreater(ctx, boardKey(appID), playerID, float64(result.Best)); err != nil {
			s.logger.Warn("Failed to mirror score to redis",
				logging.String("app_id", appID),
				logging.String("player_id", playerID),
				logging.Err(err))
			s.invalidate(ctx, appID)
		}
	}

	return result, nil
}

// invalidate drops the mirrored board so the next read rebuilds it from SQL
func (s *Service) invalidate(ctx context.Context, appID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.board.Del(ctx, boardKey(appID)); err != nil {
		s.logger.Warn("Marking redis leaderboard stale",
			logging.String("app_id", appID),
			logging.Err(err))
		s.stale[appID] = true
		return
	}
	delete(s.stale, appID)
}

// clearStale drops a board marked stale. It reports whether the board can
// be read.
func (s *Service) clearStale(ctx context.Context, appID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stale[appID] {
		return true
	}
	if _, err := s.board.Del(ctx, boardKey(appID)); err != nil {
		return false
	}
	delete(s.stale, appID)
	return true
}

// Top returns one page of the board and the number of ranked players
func (s *Service) Top(ctx context.Context, appID string, page pagination.Params) ([]Entry, int, error) {
	if s.board != nil {
		entries, total, err := s.topFromBoard(ctx, appID, page)
		if err == nil {
			return entries, total, nil
		}
		s.logger.Warn("Falling back to SQL leaderboard", logging.String("app_id", appID), logging.Err(err))
	}

	scores, total, err := s.store.ListTopScores(ctx, appID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, len(scores))
	for i, sc := range scores {
		entries[i] = Entry{Rank: page.Offset + i + 1, PlayerID: sc.PlayerID, Score: sc.Score}
	}
	return entries, total, nil
}

func (s *Service) topFromBoard(ctx context.Context, appID string, page pagination.Params) ([]Entry, int, error) {
	key := boardKey(appID)
	if !s.clearStale(ctx, appID) {
		return nil, 0, errors.ConnectionError("redis leaderboard is stale", nil)
	}

	total, err := s.board.ZCard(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		if total, err = s.warm(ctx, appID); err != nil {
			s.invalidate(ctx, appID)
			return nil, 0, err
		}
	}

	members, err := s.board.ZRevRangeWithScores(ctx, key, int64(page.Offset), int64(page.Offset+page.Limit-1))
	if err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{Rank: page.Offset + i + 1, PlayerID: m.Member, Score: int64(m.Score)}
	}
	return entries, int(total), nil
}

// warm copies an application's scores from SQL into its empty sorted set
func (s *Service) warm(ctx context.Context, appID string) (int64, error) {
	key := boardKey(appID)
	var loaded int64

	for offset := 0; ; offset += warmBatchSize {
		scores, _, err := s.store.ListTopScores(ctx, appID, warmBatchSize, offset)
		if err != nil {
			return 0, err
		}
		for _, sc := range scores {
			if _, err := s.board.ZAddGreater(ctx, key, sc.PlayerID, float64(sc.Score)); err != nil {
				return 0, err
			}
			loaded++
		}
		if len(scores) < warmBatchSize {
			break
		}
	}

	if loaded > 0 {
		s.logger.Info("Rebuilt leaderboard cache", logging.String("app_id", appID), logging.Int64("entries", loaded))
	}
	return loaded, nil
}

// Rank returns a player's 1-based position and score
func (s *Service) Rank(ctx context.Context, appID, playerID string) (*Entry, error) {
	if s.board != nil && s.clearStale(ctx, appID) {
		rank, found, err := s.board.ZRevRank(ctx, boardKey(appID), playerID)
		if err == nil && found {
			score, _, err := s.board.ZScore(ctx, boardKey(appID), playerID)
			if err == nil {
				return &Entry{Rank: int(rank) + 1, PlayerID: playerID, Score: int64(score)}, nil
			}
		}
		if err != nil {
			s.logger.Warn("Falling back to SQL rank", logging.String("app_id", appID), logging.Err(err))
		}
	}

	rank, sc, err := s.store.GetScoreRank(ctx, appID, playerID)
	if err != nil {
		return nil, err
	}
	return &Entry{Rank: rank, PlayerID: sc.PlayerID, Score: sc.Score}, nil
}

// Reset removes every score of an application and returns how many were
// stored
func (s *Service) Reset(ctx context.Context, appID string) (int64, error) {
	removed, err := s.store.DeleteScores(ctx, appID)
	if err != nil {
		return 0, err
	}

	if s.board != nil {
		s.mu.Lock()
		_, err := s.board.Del(ctx, boardKey(appID))
		if err != nil {
			s.stale[appID] = true
		} else {
			delete(s.stale, appID)
		}
		s.mu.Unlock()
		if err != nil {
			return removed, fmt.Errorf("scores deleted but redis board %s was not cleared: %w", boardKey(appID), err)
		}
	}

	s.logger.Info("Leaderboard reset",
		logging.String("app_id", appID),
		logging.Int64("removed", removed))
	return removed, nil
}
