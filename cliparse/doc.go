// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Postgres connection string or SQLite file URL (required)
  - Dialect: postgres or sqlite (default: postgres for postgres:// URLs, else sqlite)
  - EnvFile: dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type (sqlite or postgres)
	-env  Env file path, empty to skip

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the env file. A missing env file
is not an error.
*/
package cliparse
