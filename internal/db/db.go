package db

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/lib/pq"
	sqltrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/database/sql"
)

var registerTraced sync.Once

// Open returns a verified database connection. Queries run through the
// Datadog contrib driver so each one shows up as a span under the
// request trace.
func Open(dsn string) (*sql.DB, error) {
	registerTraced.Do(func() {
		sqltrace.Register("postgres", &pq.Driver{}, sqltrace.WithServiceName("mark-shop-db"))
	})

	db, err := sqltrace.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

// openPlain opens an untraced connection, used by the migration runner.
func openPlain(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}
