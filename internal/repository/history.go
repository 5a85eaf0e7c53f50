package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// HistoryRepository stores finished study sessions in PostgreSQL.
type HistoryRepository struct {
	db *pgxpool.Pool
	tx Transactor
}

// NewHistoryRepository creates a new HistoryRepository with the provided database pool.
func NewHistoryRepository(db *pgxpool.Pool, tx Transactor) *HistoryRepository {
	return &HistoryRepository{db: db, tx: tx}
}

// SaveSession inserts the session and the names missed in it atomically.
func (r *HistoryRepository) SaveSession(ctx context.Context, s *entities.StudySession) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO study_sessions (
				id, chat_id, level, is_retry,
				correct, wrong, total, started_at, completed_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		_, err := tx.Exec(
			ctx,
			query,
			s.ID,
			s.ChatID,
			int(s.Level),
			s.IsRetry,
			s.Summary.Correct,
			s.Summary.Wrong,
			s.Summary.Total,
			s.StartedAt,
			s.CompletedAt,
		)
		if err != nil {
			return fmt.Errorf("insert study session: %w", err)
		}

		if len(s.Missed) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(s.Missed))
		for i, name := range s.Missed {
			rows = append(rows, []any{s.ID, i + 1, name})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"study_misses"},
			[]string{"session_id", "position", "entry_name"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("insert study misses: %w", err)
		}

		return nil
	})
}

// GetStats returns per-level totals for chatID. Levels without sessions are omitted.
func (r *HistoryRepository) GetStats(ctx context.Context, chatID int64) ([]entities.LevelStats, error) {
	query := `
		SELECT level, COUNT(*), COALESCE(SUM(correct), 0), COALESCE(SUM(wrong), 0)
		FROM study_sessions
		WHERE chat_id = $1
		GROUP BY level
		ORDER BY level
	`

	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []entities.LevelStats
	for rows.Next() {
		var (
			level int
			st    entities.LevelStats
		)
		if err = rows.Scan(&level, &st.Sessions, &st.Correct, &st.Wrong); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		st.Level = entities.Level(level)
		stats = append(stats, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}

	return stats, nil
}
