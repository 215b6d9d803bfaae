// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, result, and request/response types.

# Domain Types

Rows of the three tables:

  - Poll: id, title, owner_username
  - Option: id, option_text, poll_id
  - Vote: username, option_id

PollWithOptions groups a poll with its options as returned by the
poll detail and latest-poll queries.

# Result Types

Aggregates computed by the database:

  - OptionResult: per-option vote count and percentage
  - RankedPoll: per-poll vote count and competition rank

Struct fields carry db tags so rows scan directly by column name.

# Request/Response Types

  - CreatePollRequest: title, owner, options
  - CastVoteRequest: username
  - ErrorResponse: error, message
*/
package models
