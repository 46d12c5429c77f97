package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Session is a store handle bound to one pooled connection and one request
// context. It must be closed to return the connection to the pool.
type Session struct {
	DB   *gorm.DB
	conn *sql.Conn
}

// OpenSession reserves a connection from the pool for the caller. Failure to
// obtain a live connection is reported as ErrUnavailable; nothing is retried.
func (d *Database) OpenSession(ctx context.Context) (*Session, error) {
	if d == nil || d.DB == nil {
		return nil, fmt.Errorf("%w: database not configured", ErrUnavailable)
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire connection: %v", ErrUnavailable, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: ping connection: %v", ErrUnavailable, err)
	}

	tx := d.DB.Session(&gorm.Session{Context: ctx, NewDB: true})
	// *sql.Conn satisfies gorm.ConnPool, so every statement issued through
	// tx runs on the reserved connection.
	tx.Statement.ConnPool = conn

	return &Session{DB: tx, conn: conn}, nil
}

// Close releases the reserved connection. Closing twice returns sql.ErrConnDone.
func (s *Session) Close() error {
	return s.conn.Close()
}
