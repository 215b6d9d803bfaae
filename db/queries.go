// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// Queries is the statement catalog for one dialect. It holds no connection;
// every operation takes the handle to run on.
type Queries struct {
	dialect Dialect
	sb      squirrel.StatementBuilderType
}

func NewQueries(d Dialect) *Queries {
	return &Queries{
		dialect: d,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(d.placeholder()),
	}
}

// Dialect returns the dialect the catalog was built for.
func (q *Queries) Dialect() Dialect {
	return q.dialect
}

var pollColumns = []string{"id", "title", "owner_username"}

// pollOptionColumns are aliased so both drivers report the same names.
var pollOptionColumns = []string{
	"p.id AS poll_id",
	"p.title AS title",
	"p.owner_username AS owner_username",
	"o.id AS option_id",
	"o.option_text AS option_text",
}

func (q *Queries) selectAllPolls() squirrel.SelectBuilder {
	return q.sb.Select(pollColumns...).From("polls").OrderBy("id")
}

func (q *Queries) selectPollWithOptions(pollID int64) squirrel.SelectBuilder {
	return q.sb.Select(pollOptionColumns...).
		From("polls p").
		LeftJoin("options o ON o.poll_id = p.id").
		Where("p.id = ?", pollID).
		OrderBy("o.id")
}

func (q *Queries) selectLatestPoll() squirrel.SelectBuilder {
	return q.sb.Select(pollOptionColumns...).
		From("polls p").
		LeftJoin("options o ON o.poll_id = p.id").
		Where("p.id = (SELECT MAX(id) FROM polls)").
		OrderBy("o.id")
}

func (q *Queries) selectRandomVote(optionID int64) squirrel.SelectBuilder {
	return q.sb.Select("username", "option_id").
		From("votes").
		Where("option_id = ?", optionID).
		OrderBy("RANDOM()").
		Limit(1)
}

// selectPollVoteDetails counts votes per option and divides by the poll-wide
// total from a window over the grouped counts. A poll without votes yields 0.
func (q *Queries) selectPollVoteDetails(pollID int64) squirrel.SelectBuilder {
	return q.sb.Select(
		"o.id AS option_id",
		"o.option_text AS option_text",
		"COUNT(v.option_id) AS vote_count",
		"COALESCE(100.0 * COUNT(v.option_id) / NULLIF(CAST(SUM(COUNT(v.option_id)) OVER () AS DOUBLE PRECISION), 0), 0.0) AS vote_percent",
	).
		From("options o").
		LeftJoin("votes v ON v.option_id = o.id").
		Where("o.poll_id = ?", pollID).
		GroupBy("o.id", "o.option_text").
		OrderBy("o.id")
}

// selectRankedPolls uses RANK(), so tied polls share a rank and the next
// rank skips accordingly.
func (q *Queries) selectRankedPolls() squirrel.SelectBuilder {
	return q.sb.Select(
		"p.id AS poll_id",
		"p.title AS title",
		"COUNT(v.option_id) AS vote_count",
		"RANK() OVER (ORDER BY COUNT(v.option_id) DESC) AS poll_rank",
	).
		From("polls p").
		LeftJoin("options o ON o.poll_id = p.id").
		LeftJoin("votes v ON v.option_id = o.id").
		GroupBy("p.id", "p.title").
		OrderBy("vote_count DESC", "p.id")
}

func (q *Queries) insertPollReturningID(title, owner string) squirrel.InsertBuilder {
	return q.sb.Insert("polls").
		Columns("title", "owner_username").
		Values(title, owner).
		Suffix("RETURNING id")
}

// insertOptions builds a single multi-row insert.
func (q *Queries) insertOptions(pollID int64, texts []string) squirrel.InsertBuilder {
	b := q.sb.Insert("options").Columns("option_text", "poll_id")
	for _, text := range texts {
		b = b.Values(text, pollID)
	}
	return b
}

func (q *Queries) insertVote(username string, optionID int64) squirrel.InsertBuilder {
	return q.sb.Insert("votes").
		Columns("username", "option_id").
		Values(username, optionID)
}

// selectAll runs a built query and scans every row into dst.
func selectAll(ctx context.Context, conn DBTX, dst any, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return sqlscan.Select(ctx, conn, dst, query, args...)
}
