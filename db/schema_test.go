// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, q := setupTestDB(t)
	ctx := context.Background()

	_, err := q.CreatePoll(ctx, conn, "Keep me", "alice", []string{"A"})
	require.NoError(t, err)

	// Second call must not fail or touch existing rows
	require.NoError(t, CreateSchema(ctx, conn, SQLite))
	assert.Equal(t, 1, countRows(t, conn, "polls"))
	assert.Equal(t, 1, countRows(t, conn, "options"))
}

func TestCreateSchema_Tables(t *testing.T) {
	conn, _ := setupTestDB(t)

	for _, table := range []string{"polls", "options", "votes"} {
		t.Run(table, func(t *testing.T) {
			var name string
			err := conn.QueryRow(
				"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
			).Scan(&name)
			require.NoError(t, err)
			assert.Equal(t, table, name)
		})
	}
}

func TestSchemaFor(t *testing.T) {
	assert.Contains(t, schemaFor(Postgres)[0], "SERIAL PRIMARY KEY")
	assert.Contains(t, schemaFor(SQLite)[0], "AUTOINCREMENT")
	assert.Len(t, schemaFor(Postgres), len(schemaFor(SQLite)))
}
