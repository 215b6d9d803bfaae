// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/pollstore/models"
)

// pollOptionRow is one row of a poll joined with one of its options.
// Option columns are NULL for a poll without options.
type pollOptionRow struct {
	PollID        int64   `db:"poll_id"`
	Title         string  `db:"title"`
	OwnerUsername string  `db:"owner_username"`
	OptionID      *int64  `db:"option_id"`
	OptionText    *string `db:"option_text"`
}

// ListPolls returns every poll ordered by id.
func (q *Queries) ListPolls(ctx context.Context, conn DBTX) ([]models.Poll, error) {
	polls := []models.Poll{}
	if err := selectAll(ctx, conn, &polls, q.selectAllPolls()); err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}

// GetLatestPoll returns the most recently created poll (highest id) with its
// options. Returns sql.ErrNoRows when no poll exists.
func (q *Queries) GetLatestPoll(ctx context.Context, conn DBTX) (*models.PollWithOptions, error) {
	var rows []pollOptionRow
	if err := selectAll(ctx, conn, &rows, q.selectLatestPoll()); err != nil {
		return nil, fmt.Errorf("failed to get latest poll: %w", err)
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return foldPollRows(rows), nil
}

// GetPollDetails returns a poll with all of its options.
// Returns sql.ErrNoRows when the poll does not exist.
func (q *Queries) GetPollDetails(ctx context.Context, conn DBTX, pollID int64) (*models.PollWithOptions, error) {
	var rows []pollOptionRow
	if err := selectAll(ctx, conn, &rows, q.selectPollWithOptions(pollID)); err != nil {
		return nil, fmt.Errorf("failed to get poll %d: %w", pollID, err)
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return foldPollRows(rows), nil
}

// CreatePoll inserts a poll and its options in one transaction and returns
// the new poll id. If any insert fails nothing is persisted.
func (q *Queries) CreatePoll(ctx context.Context, conn TxBeginner, title, owner string, options []string) (int64, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := q.insertPollReturningID(title, owner).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build poll insert: %w", err)
	}

	var pollID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&pollID); err != nil {
		return 0, fmt.Errorf("failed to insert poll: %w", err)
	}

	if len(options) > 0 {
		query, args, err = q.insertOptions(pollID, options).ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build option insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert options: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit poll: %w", err)
	}

	return pollID, nil
}

func foldPollRows(rows []pollOptionRow) *models.PollWithOptions {
	first := rows[0]
	result := &models.PollWithOptions{
		Poll: models.Poll{
			ID:            first.PollID,
			Title:         first.Title,
			OwnerUsername: first.OwnerUsername,
		},
		Options: make([]models.Option, 0, len(rows)),
	}

	for _, row := range rows {
		if row.OptionID == nil {
			continue
		}
		opt := models.Option{ID: *row.OptionID, PollID: row.PollID}
		if row.OptionText != nil {
			opt.OptionText = *row.OptionText
		}
		result.Options = append(result.Options, opt)
	}

	return result
}
