// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollstore/models"
	"github.com/danielhkuo/pollstore/testutil"
)

func TestCreatePoll(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewPollHandler(conn, q)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name:           "valid poll",
			body:           models.CreatePollRequest{Title: "Color?", Owner: "alice", Options: []string{"Red", "Blue"}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid poll without options",
			body:           models.CreatePollRequest{Title: "Later", Owner: "alice"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           models.CreatePollRequest{Owner: "alice", Options: []string{"A"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing owner",
			body:           models.CreatePollRequest{Title: "Color?", Options: []string{"A"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank option",
			body:           models.CreatePollRequest{Title: "Color?", Owner: "alice", Options: []string{"A", "  "}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreatePollResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Positive(t, resp.PollID)
			}
		})
	}
}

func TestCreatePoll_PersistsOptions(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewPollHandler(conn, q)

	req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title: "Lunch?", Owner: "bob", Options: []string{"Pizza", "Sushi", "Tacos"},
	}, nil)
	w := httptest.NewRecorder()
	handler.CreatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)

	details, err := q.GetPollDetails(req.Context(), conn, resp.PollID)
	require.NoError(t, err)
	assert.Equal(t, "bob", details.Poll.OwnerUsername)
	require.Len(t, details.Options, 3)
	assert.Equal(t, "Tacos", details.Options[2].OptionText)
}

func TestListPolls(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewPollHandler(conn, q)

	w := httptest.NewRecorder()
	handler.ListPolls(w, testutil.MakeRequest("GET", "/polls", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())

	testutil.CreateTestPoll(t, conn, q, "One", "A")
	testutil.CreateTestPoll(t, conn, q, "Two", "B")

	w = httptest.NewRecorder()
	handler.ListPolls(w, testutil.MakeRequest("GET", "/polls", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	require.Len(t, polls, 2)
	assert.Equal(t, "One", polls[0].Title)
	assert.Equal(t, "Two", polls[1].Title)
}

func TestGetLatestPoll(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewPollHandler(conn, q)

	w := httptest.NewRecorder()
	handler.GetLatestPoll(w, testutil.MakeRequest("GET", "/polls/latest", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	testutil.CreateTestPoll(t, conn, q, "Older", "A")
	latestID, _ := testutil.CreateTestPoll(t, conn, q, "Newer", "Yes", "No")

	w = httptest.NewRecorder()
	handler.GetLatestPoll(w, testutil.MakeRequest("GET", "/polls/latest", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollWithOptions
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, latestID, resp.Poll.ID)
	assert.Len(t, resp.Options, 2)
}

func TestGetPoll(t *testing.T) {
	conn, q := testutil.SetupTestDB(t)
	handler := NewPollHandler(conn, q)
	pollID, optionIDs := testutil.CreateTestPoll(t, conn, q, "Color?", "Red", "Blue")

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing poll", strconv.FormatInt(pollID, 10), http.StatusOK},
		{"unknown poll", "9999", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/polls/"+tt.id, nil, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.PollWithOptions
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, "Color?", resp.Poll.Title)
				require.Len(t, resp.Options, 2)
				assert.Equal(t, optionIDs[0], resp.Options[0].ID)
				assert.Equal(t, "Red", resp.Options[0].OptionText)
			}
		})
	}
}
