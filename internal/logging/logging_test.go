// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestLoggerIsUsableAtInit(t *testing.T) {
	if L == nil {
		t.Fatalf("package-level logger is nil")
	}
	// Must not panic; the logger is wired to a writer at package init.
	Infof("init check %d", 1)
}

func TestSetDebugTogglesLevel(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(true)
	if L.GetLevel() != clog.DebugLevel {
		t.Fatalf("level = %v, want debug", L.GetLevel())
	}
	SetDebug(false)
	if L.GetLevel() != clog.InfoLevel {
		t.Fatalf("level = %v, want info", L.GetLevel())
	}
}
