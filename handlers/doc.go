// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pollstore API.

# Handler Types

Each handler is a struct holding the database handle and the statement
catalog for its dialect:

  - PollHandler: list, create, latest, and detail lookups
  - ResultsHandler: per-option tallies and poll rankings
  - VotingHandler: casting votes and picking a random voter

Handlers are created via constructor functions:

	q := db.NewQueries(cfg.Dialect)
	pollHandler := handlers.NewPollHandler(conn, q)

# Polls

	GET  /polls         → ListPolls
	POST /polls         → CreatePoll (title, owner, options)
	GET  /polls/latest  → GetLatestPoll
	GET  /polls/{id}    → GetPoll

# Results

	GET /polls/{id}/results → GetResults
	GET /polls/ranked       → GetRankings

Percentages are 0 for every option of a poll nobody voted on. Polls with
the same vote count share a rank.

# Voting

	POST /options/{id}/votes        → CastVote (username)
	GET  /options/{id}/votes/random → GetRandomVote

Voters are not deduplicated; the same username may vote repeatedly.

# Errors

Missing rows map to 404, malformed ids and bodies to 400, and any other
database error is logged and returned as 500.
*/
package handlers
