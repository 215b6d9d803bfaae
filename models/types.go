// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreatePollRequest struct {
	Title   string   `json:"title"`
	Owner   string   `json:"owner"`
	Options []string `json:"options"`
}

type CastVoteRequest struct {
	Username string `json:"username"`
}

// Response types

type CreatePollResponse struct {
	PollID int64 `json:"poll_id"`
}

type CastVoteResponse struct {
	OptionID int64  `json:"option_id"`
	Message  string `json:"message"`
}

// Domain types

type Poll struct {
	ID            int64  `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	OwnerUsername string `json:"owner_username" db:"owner_username"`
}

type Option struct {
	ID         int64  `json:"id" db:"id"`
	OptionText string `json:"option_text" db:"option_text"`
	PollID     int64  `json:"poll_id" db:"poll_id"`
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

// Vote has no identity of its own; a voter may vote for the same option
// more than once.
type Vote struct {
	Username string `json:"username" db:"username"`
	OptionID int64  `json:"option_id" db:"option_id"`
}

// Result types

// OptionResult is one option's share of a poll's votes.
// VotePercent is 0 when the poll has no votes at all.
type OptionResult struct {
	OptionID    int64   `json:"option_id" db:"option_id"`
	OptionText  string  `json:"option_text" db:"option_text"`
	VoteCount   int64   `json:"vote_count" db:"vote_count"`
	VotePercent float64 `json:"vote_percent" db:"vote_percent"`
}

type RankedPoll struct {
	PollID    int64  `json:"poll_id" db:"poll_id"`
	Title     string `json:"title" db:"title"`
	VoteCount int64  `json:"vote_count" db:"vote_count"`
	Rank      int64  `json:"rank" db:"poll_rank"` // 1 = most votes, ties share
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
