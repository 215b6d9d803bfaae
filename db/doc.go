// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the schema, the statement catalog, and the data-access
operations for polls, options and votes.

# Connecting

Open connects and pings for either dialect:

	conn, err := db.Open(ctx, db.Postgres, "postgres://...")
	conn, err := db.Open(ctx, db.SQLite, "file:polls.db")

SQLite connections get foreign_keys and busy_timeout pragmas unless the
URL already sets pragmas.

# Schema Creation

CreateSchema creates the three tables and their indexes:

	if err := db.CreateSchema(ctx, conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	polls 1──* options 1──* votes

Foreign keys are enforced by the database. Votes have no uniqueness
constraint.

# Operations

Queries is built once per dialect. Every operation takes the handle to run
on, so a *sql.DB, *sql.Conn or *sql.Tx can be passed:

	q := db.NewQueries(db.Postgres)
	pollID, err := q.CreatePoll(ctx, conn, "Color?", "alice", []string{"Red", "Blue"})
	err = q.AddPollVote(ctx, conn, "bob", optionID)
	results, err := q.GetPollResults(ctx, conn, pollID)
	ranked, err := q.GetRankedPolls(ctx, conn)

Counts, percentages and ranks are computed by the database. Lookups of a
single poll or vote return an error wrapping sql.ErrNoRows when nothing
matches.
*/
package db
