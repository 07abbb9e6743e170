// Package config loads runtime configuration for the puisi CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   auth service base URL
//	-p string   puisi service base URL
//	-r string   reaction service base URL
//	-t int      request timeout (seconds)
//	-s string   session file
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "auth_url": "http://localhost:3001",
//	  "puisi_url": "http://localhost:3002",
//	  "reaction_url": "http://localhost:3003",
//	  "request_timeout": "10s",
//	  "session_file": "puisi-session.db",
//	  "online_check_interval": "30s"
//	}
package config
