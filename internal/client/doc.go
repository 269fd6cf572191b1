// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the passport-api command-line client.
//
// Every API operation is a cobra subcommand. Commands talk to the server
// through an [adapter.ServerAdapter] and print the results as indented JSON,
// so the output can be piped into other tools. The session cookie is kept
// between invocations when a cookie file is configured. The tui subcommand
// opens the interactive interface of package tui over the same adapter.
package client
