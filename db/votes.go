// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/danielhkuo/pollstore/models"
)

// AddPollVote records a vote. The option must exist; repeat votes are allowed.
func (q *Queries) AddPollVote(ctx context.Context, conn DBTX, username string, optionID int64) error {
	query, args, err := q.insertVote(username, optionID).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build vote insert: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// GetRandomPollVote picks one vote for the option uniformly at random.
// Returns sql.ErrNoRows when the option has no votes.
func (q *Queries) GetRandomPollVote(ctx context.Context, conn DBTX, optionID int64) (*models.Vote, error) {
	query, args, err := q.selectRandomVote(optionID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build vote query: %w", err)
	}

	var vote models.Vote
	err = conn.QueryRowContext(ctx, query, args...).Scan(&vote.Username, &vote.OptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get random vote for option %d: %w", optionID, err)
	}

	return &vote, nil
}

// GetPollResults returns the vote count and percentage of every option of a
// poll, including options nobody voted for.
func (q *Queries) GetPollResults(ctx context.Context, conn DBTX, pollID int64) ([]models.OptionResult, error) {
	results := []models.OptionResult{}
	if err := selectAll(ctx, conn, &results, q.selectPollVoteDetails(pollID)); err != nil {
		return nil, fmt.Errorf("failed to get results for poll %d: %w", pollID, err)
	}
	return results, nil
}

// GetRankedPolls returns every poll with its total vote count, most votes
// first. Polls with equal counts share a rank.
func (q *Queries) GetRankedPolls(ctx context.Context, conn DBTX) ([]models.RankedPoll, error) {
	ranked := []models.RankedPoll{}
	if err := selectAll(ctx, conn, &ranked, q.selectRankedPolls()); err != nil {
		return nil, fmt.Errorf("failed to rank polls: %w", err)
	}
	return ranked, nil
}
