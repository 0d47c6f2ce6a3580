// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// HistoryEntry is one row of the client-local action history. It records
// what this client did (logins, bookings, deletions), not server state.
type HistoryEntry struct {
	ID        int
	Timestamp string
	Role      string
	Action    string
	Details   string
}
