//go:build cgo_sqlite

package notestore

import (
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"
