// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/pollstore/db"
	"github.com/danielhkuo/pollstore/middleware"
	"github.com/danielhkuo/pollstore/models"
)

type PollHandler struct {
	conn *sql.DB
	q    *db.Queries
}

func NewPollHandler(conn *sql.DB, q *db.Queries) *PollHandler {
	return &PollHandler{conn: conn, q: q}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.q.ListPolls(r.Context(), h.conn)
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if strings.TrimSpace(req.Title) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(req.Owner) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "owner is required")
		return
	}
	for _, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "options cannot be blank")
			return
		}
	}

	pollID, err := h.q.CreatePoll(r.Context(), h.conn, req.Title, req.Owner, req.Options)
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "owner", req.Owner, "options", len(req.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{PollID: pollID})
}

// GetLatestPoll handles GET /polls/latest
func (h *PollHandler) GetLatestPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.q.GetLatestPoll(r.Context(), h.conn)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No polls yet")
		return
	}
	if err != nil {
		slog.Error("failed to get latest poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	poll, err := h.q.GetPollDetails(r.Context(), h.conn, pollID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to get poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// pathID parses the {id} path value, writing a 400 when it is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}
