// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the Rentmaster command-line interface. It wires
// the configuration, the local store, the session and the request gateway
// together and exposes them as cobra commands. Running the binary without
// a subcommand starts the interactive TUI instead.
package cli
