package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/pkg/log"
)

// ProfileRepo persists user records as one JSON blob per display name.
// No transactions beyond single statements; the profile service owns
// read-modify-write ordering.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userName string) (*core.Record, error) {
	var raw string
	query := `SELECT record FROM profiles WHERE user_name = ?`
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	rec := core.NewRecord()
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil, fmt.Errorf("failed to decode profile record: %w", err)
	}
	return rec, nil
}

func (r *ProfileRepo) Put(ctx context.Context, userName string, rec *core.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode profile record: %w", err)
	}

	query := `
		INSERT INTO profiles (user_name, record) VALUES (?, ?)
		ON CONFLICT(user_name) DO UPDATE SET
			record = excluded.record,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, userName, string(raw)); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("user", userName).Msg("profile saved")
	return nil
}

func (r *ProfileRepo) Delete(ctx context.Context, userName string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_name = ?`, userName); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
