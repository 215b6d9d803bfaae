// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pollstore API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, db.NewQueries(cfg.Dialect))

# Endpoints

Health (pings the database):

	GET /health

Polls:

	GET  /polls        - List polls
	POST /polls        - Create poll with options
	GET  /polls/latest - Most recent poll with options
	GET  /polls/{id}   - Poll with options

Results:

	GET /polls/{id}/results - Per-option counts and percentages
	GET /polls/ranked       - Polls ranked by total votes

Voting:

	POST /options/{id}/votes        - Cast a vote
	GET  /options/{id}/votes/random - Random voter for an option

/polls/latest and /polls/ranked are more specific than /polls/{id} and
take precedence over it.
*/
package router
