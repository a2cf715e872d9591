//go:build !cgo_sqlite

package notestore

import (
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"
