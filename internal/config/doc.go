// Package config loads runtime configuration for the photo vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the sqlite database file
//	-s string   directory for session state files
//
// Environment variables
//
//	PHOTOVAULT_DB            path to the sqlite database file
//	PHOTOVAULT_SESSION_DIR   directory for session state files
//
// # JSON schema
//
//	{
//	  "database_dsn": "photovault.db",
//	  "session_dir": "/tmp/photovault"
//	}
package config
