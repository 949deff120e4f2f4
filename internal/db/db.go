// Package db owns the process-wide database handle. The connection is
// established lazily on first use and shared for the process lifetime;
// a failed attempt is not cached, so a later caller dials again.
package db

import (
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Lazy struct {
	mu   sync.Mutex
	db   *gorm.DB
	open func() (*gorm.DB, error)
}

// NewLazy wires a dial function without calling it.
func NewLazy(open func() (*gorm.DB, error)) *Lazy {
	return &Lazy{open: open}
}

// FromDB wraps an already-open handle, used by tests.
func FromDB(gdb *gorm.DB) *Lazy {
	return &Lazy{db: gdb}
}

// Get returns the shared handle, dialing if no successful attempt has
// completed yet. The mutex guarantees a single in-flight attempt:
// concurrent first callers all wait for one dial and share its result.
func (l *Lazy) Get() (*gorm.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	gdb, err := l.open()
	if err != nil {
		return nil, err
	}
	l.db = gdb
	return l.db, nil
}

// Open dials MySQL and migrates the given models.
func Open(dsn string, models ...any) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if len(models) > 0 {
		if err := gdb.AutoMigrate(models...); err != nil {
			return nil, err
		}
	}
	log.Printf("database connected")
	return gdb, nil
}
