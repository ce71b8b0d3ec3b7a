// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"fmt"
)

// requireRowsAffected maps a zero-row update/delete to the given sentinel.
func requireRowsAffected(res sql.Result, sentinel error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel
	}
	return nil
}
