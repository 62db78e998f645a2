package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is a key/value blob store. Values are opaque text.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	// Dir is the directory holding the backing files, watched for changes.
	Dir() string
	Close() error
}

// Driver names a Backend implementation.
type Driver string

const (
	DriverDiskv  Driver = "diskv"
	DriverSQLite Driver = "sqlite"
)

// ParseDriver maps a configured driver name to a Driver. Empty means diskv.
func ParseDriver(s string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(s))) {
	case "", DriverDiskv:
		return DriverDiskv, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("store: unknown driver %q", s)
	}
}

// Open creates the Backend for driver rooted at basePath.
func Open(driver Driver, basePath string) (Backend, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	switch driver {
	case "", DriverDiskv:
		return NewDiskv(basePath)
	case DriverSQLite:
		return NewSQLite(basePath)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}
