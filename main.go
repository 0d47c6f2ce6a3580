// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Rentmaster.
//
// Usage:
//
//	go run . [flags]
//	./rentmaster [flags]
//
// This launches the Rentmaster CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/toeirei/rentmaster/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func main() {
	if os.Getenv("RENTMASTER_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Rentmaster version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Rentmaster CLI error: %v", err)
		os.Exit(1)
	}
}
