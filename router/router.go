// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollstore/db"
	"github.com/danielhkuo/pollstore/handlers"
	"github.com/danielhkuo/pollstore/middleware"
)

func NewRouter(conn *sql.DB, q *db.Queries) *http.ServeMux {
	mux := http.NewServeMux()

	pollHandler := handlers.NewPollHandler(conn, q)
	resultsHandler := handlers.NewResultsHandler(conn, q)
	votingHandler := handlers.NewVotingHandler(conn, q)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.PingContext(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/latest", middleware.WithLogging(pollHandler.GetLatestPoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Results
	mux.HandleFunc("GET /polls/ranked", middleware.WithLogging(resultsHandler.GetRankings))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Voting
	mux.HandleFunc("POST /options/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /options/{id}/votes/random", middleware.WithLogging(votingHandler.GetRandomVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollstore API v1"))
	})

	return mux
}
