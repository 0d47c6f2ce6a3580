// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/toeirei/rentmaster/internal/model"
	"github.com/uptrace/bun"
)

// sessionStateModel maps the `session_state` table for bun queries. The
// session is stored as three key/value rows (role, profile, token) so the
// table shape stays engine-neutral.
type sessionStateModel struct {
	bun.BaseModel `bun:"table:session_state"`
	Key           string `bun:"key,pk"`
	Value         string `bun:"value"`
}

// actionHistoryModel maps the `action_history` table.
type actionHistoryModel struct {
	bun.BaseModel `bun:"table:action_history"`
	ID            int    `bun:"id,pk,autoincrement"`
	Timestamp     string `bun:"timestamp"`
	Role          string `bun:"role"`
	Action        string `bun:"action"`
	Details       string `bun:"details"`
}

// Session state keys.
const (
	keySessionRole    = "role"
	keySessionProfile = "profile"
	keySessionToken   = "token"
)

// BunStore is the bun-backed implementation of the Store interface.
type BunStore struct {
	db  *sql.DB
	bun *bun.DB
}

// ensureSchema creates the tables on first use.
func (s *BunStore) ensureSchema() error {
	ctx := context.Background()
	if _, err := s.bun.NewCreateTable().Model((*sessionStateModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	if _, err := s.bun.NewCreateTable().Model((*actionHistoryModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	return nil
}

// SaveSession writes the three session values in a single transaction,
// replacing whatever was stored before. Either all three rows land or none
// do.
func (s *BunStore) SaveSession(role, profile, token string) error {
	ctx := context.Background()

	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Raw DELETE without WHERE: bun refuses a Delete query without one.
	if _, err := tx.ExecContext(ctx, "DELETE FROM session_state"); err != nil {
		return MapDBError(err)
	}

	rows := []sessionStateModel{
		{Key: keySessionRole, Value: role},
		{Key: keySessionProfile, Value: profile},
		{Key: keySessionToken, Value: token},
	}
	if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return MapDBError(err)
	}

	return tx.Commit()
}

// LoadSession reads the persisted session. An absent or incomplete session
// is reported as three empty strings with a nil error; deciding what to do
// about a malformed profile is the caller's business.
func (s *BunStore) LoadSession() (string, string, string, error) {
	ctx := context.Background()

	var rows []sessionStateModel
	if err := s.bun.NewSelect().Model(&rows).Scan(ctx); err != nil {
		if err == sql.ErrNoRows {
			return "", "", "", nil
		}
		return "", "", "", MapDBError(err)
	}

	var role, profile, token string
	for _, r := range rows {
		switch r.Key {
		case keySessionRole:
			role = r.Value
		case keySessionProfile:
			profile = r.Value
		case keySessionToken:
			token = r.Value
		}
	}
	return role, profile, token, nil
}

// DeleteSession removes all persisted session rows. Safe to call when no
// session is stored.
func (s *BunStore) DeleteSession() error {
	ctx := context.Background()
	_, err := s.bun.ExecContext(ctx, "DELETE FROM session_state")
	return MapDBError(err)
}

// LogAction appends one row to the local action history.
func (s *BunStore) LogAction(role, action, details string) error {
	ctx := context.Background()
	entry := actionHistoryModel{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Role:      role,
		Action:    action,
		Details:   details,
	}
	_, err := s.bun.NewInsert().Model(&entry).Exec(ctx)
	return MapDBError(err)
}

// GetHistory returns the most recent history entries, newest first. A
// non-positive limit returns everything.
func (s *BunStore) GetHistory(limit int) ([]model.HistoryEntry, error) {
	ctx := context.Background()

	q := s.bun.NewSelect().Model((*actionHistoryModel)(nil)).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []actionHistoryModel
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, MapDBError(err)
	}

	entries := make([]model.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, model.HistoryEntry{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			Role:      r.Role,
			Action:    r.Action,
			Details:   r.Details,
		})
	}
	return entries, nil
}

// Close closes the underlying database handle.
func (s *BunStore) Close() error {
	return s.db.Close()
}
