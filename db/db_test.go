// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a fresh SQLite database with the schema applied.
func setupTestDB(t *testing.T) (*sql.DB, *Queries) {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "polls.db")
	conn, err := Open(ctx, SQLite, "file:"+path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, CreateSchema(ctx, conn, SQLite))

	return conn, NewQueries(SQLite)
}

func createPoll(t *testing.T, conn *sql.DB, q *Queries, title string, options ...string) (int64, []int64) {
	t.Helper()

	ctx := context.Background()
	pollID, err := q.CreatePoll(ctx, conn, title, "owner", options)
	require.NoError(t, err)

	details, err := q.GetPollDetails(ctx, conn, pollID)
	require.NoError(t, err)

	optionIDs := make([]int64, 0, len(details.Options))
	for _, opt := range details.Options {
		optionIDs = append(optionIDs, opt.ID)
	}
	return pollID, optionIDs
}

func castVotes(t *testing.T, conn *sql.DB, q *Queries, optionID int64, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		require.NoError(t, q.AddPollVote(context.Background(), conn, "voter", optionID))
	}
}

func countRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
