// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/pollstore/db"
	"github.com/danielhkuo/pollstore/middleware"
	"github.com/danielhkuo/pollstore/models"
)

type VotingHandler struct {
	conn *sql.DB
	q    *db.Queries
}

func NewVotingHandler(conn *sql.DB, q *db.Queries) *VotingHandler {
	return &VotingHandler{conn: conn, q: q}
}

// CastVote handles POST /options/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	optionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	err := h.q.AddPollVote(r.Context(), h.conn, req.Username, optionID)
	if isForeignKeyViolation(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "option_id", optionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote cast", "option_id", optionID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		OptionID: optionID,
		Message:  "Vote recorded",
	})
}

// GetRandomVote handles GET /options/{id}/votes/random
// Picks one voter for the option at random
func (h *VotingHandler) GetRandomVote(w http.ResponseWriter, r *http.Request) {
	optionID, ok := pathID(w, r)
	if !ok {
		return
	}

	vote, err := h.q.GetRandomPollVote(r.Context(), h.conn, optionID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No votes for this option")
		return
	}
	if err != nil {
		slog.Error("failed to pick random vote", "error", err, "option_id", optionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// isForeignKeyViolation reports whether err came from a missing referenced row
// in either Postgres or SQLite.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	return false
}
