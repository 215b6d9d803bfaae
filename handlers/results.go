// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollstore/db"
	"github.com/danielhkuo/pollstore/middleware"
)

type ResultsHandler struct {
	conn *sql.DB
	q    *db.Queries
}

func NewResultsHandler(conn *sql.DB, q *db.Queries) *ResultsHandler {
	return &ResultsHandler{conn: conn, q: q}
}

// GetResults handles GET /polls/{id}/results
// Returns every option with its vote count and percentage
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	results, err := h.q.GetPollResults(r.Context(), h.conn, pollID)
	if err != nil {
		slog.Error("failed to get poll results", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// No rows is either an unknown poll or a poll without options
	if len(results) == 0 {
		_, err := h.q.GetPollDetails(r.Context(), h.conn, pollID)
		if errors.Is(err, sql.ErrNoRows) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		if err != nil {
			slog.Error("failed to get poll", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"poll_id": pollID,
		"results": results,
	})
}

// GetRankings handles GET /polls/ranked
func (h *ResultsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.q.GetRankedPolls(r.Context(), h.conn)
	if err != nil {
		slog.Error("failed to rank polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ranked)
}
