// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollstore/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pollstore_test.db")
	conn, err := db.Open(ctx, db.SQLite, "file:"+path)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn, db.SQLite), "failed to create schema")

	return conn, db.NewQueries(db.SQLite)
}

// CreateTestPoll creates a poll with the given options and returns the poll
// ID and the option IDs in the order given.
func CreateTestPoll(t *testing.T, conn *sql.DB, q *db.Queries, title string, options ...string) (int64, []int64) {
	t.Helper()

	ctx := context.Background()
	pollID, err := q.CreatePoll(ctx, conn, title, "TestOwner", options)
	require.NoError(t, err, "failed to create test poll")

	details, err := q.GetPollDetails(ctx, conn, pollID)
	require.NoError(t, err, "failed to read back test poll")

	optionIDs := make([]int64, len(details.Options))
	for i, opt := range details.Options {
		optionIDs[i] = opt.ID
	}
	return pollID, optionIDs
}

// CastTestVotes records n votes by username for an option
func CastTestVotes(t *testing.T, conn *sql.DB, q *db.Queries, optionID int64, username string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		err := q.AddPollVote(context.Background(), conn, username, optionID)
		require.NoError(t, err, "failed to cast test vote")
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
