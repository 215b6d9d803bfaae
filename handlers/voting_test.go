// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollstore/models"
	"github.com/danielhkuo/pollstore/testutil"
)

func TestCastVote(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewVotingHandler(conn, q)
	pollID, opts := testutil.CreateTestPoll(t, conn, q, "Color?", "Red", "Blue")
	red := strconv.FormatInt(opts[0], 10)

	tests := []struct {
		name           string
		id             string
		body           any
		expectedStatus int
	}{
		{"valid vote", red, models.CastVoteRequest{Username: "alice"}, http.StatusCreated},
		{"same voter again", red, models.CastVoteRequest{Username: "alice"}, http.StatusCreated},
		{"missing username", red, models.CastVoteRequest{}, http.StatusBadRequest},
		{"invalid JSON", red, "nope", http.StatusBadRequest},
		{"unknown option", "9999", models.CastVoteRequest{Username: "bob"}, http.StatusNotFound},
		{"non-numeric option", "red", models.CastVoteRequest{Username: "bob"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/options/"+tt.id+"/votes", tt.body, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// Both accepted votes by alice count
	results, err := q.GetPollResults(t.Context(), conn, pollID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].VoteCount)
	assert.Zero(t, results[1].VoteCount)
}

func TestGetRandomVote(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewVotingHandler(conn, q)
	_, opts := testutil.CreateTestPoll(t, conn, q, "Quiz", "Right", "Wrong")

	get := func(id string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/options/"+id+"/votes/random", nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.GetRandomVote(w, req)
		return w
	}

	right := strconv.FormatInt(opts[0], 10)
	testutil.AssertStatus(t, get(right), http.StatusNotFound)
	testutil.AssertStatus(t, get("oops"), http.StatusBadRequest)

	testutil.CastTestVotes(t, conn, q, opts[0], "carol", 1)
	testutil.CastTestVotes(t, conn, q, opts[1], "dave", 1)

	w := get(right)
	testutil.AssertStatus(t, w, http.StatusOK)

	var vote models.Vote
	testutil.AssertJSON(t, w, &vote)
	assert.Equal(t, "carol", vote.Username)
	assert.Equal(t, opts[0], vote.OptionID)
}

func TestIsForeignKeyViolation(t *testing.T) {
	conn, _ := testutil.SetupTestDB(t)
	_, sqliteFKErr := conn.Exec("INSERT INTO votes (username, option_id) VALUES ('alice', 999)")
	require.Error(t, sqliteFKErr)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres fk", fmt.Errorf("failed to insert vote: %w", &pq.Error{Code: "23503"}), true},
		{"postgres unique", &pq.Error{Code: "23505"}, false},
		{"sqlite fk", fmt.Errorf("failed to insert vote: %w", sqliteFKErr), true},
		{"sqlite message only", errors.New("FOREIGN KEY constraint failed"), false},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isForeignKeyViolation(tt.err))
		})
	}
}
