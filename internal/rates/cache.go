package rates

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultTTL is how long a fetched rate stays valid.
const DefaultTTL = time.Hour

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rates (
    currency   TEXT PRIMARY KEY,
    rate       REAL NOT NULL,
    fetched_at TEXT NOT NULL
);
`

// Cache resolves foreign-to-home exchange rates through a SQLite-backed
// TTL cache in front of a Source. One entry per currency code, overwritten
// on refresh, never otherwise evicted. Because the process exits after
// each command, the cache lives on disk so the TTL spans invocations.
//
// Lookup failure is non-fatal: Rate returns the fallback rate 1 together
// with a non-nil error the caller should surface as a warning.
type Cache struct {
	db      *sql.DB
	source  Source
	home    string
	foreign string
	ttl     time.Duration

	// Now is the clock used for TTL checks; tests override it.
	Now func() time.Time
}

// Open opens or creates the rate cache database at dbPath.
// home is the currency budgets are expressed in; foreign is the one
// supported source currency for conversion.
func Open(dbPath string, source Source, home, foreign string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening rate cache: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating rate cache schema: %w", err)
	}

	return &Cache{
		db:      db,
		source:  source,
		home:    strings.ToUpper(home),
		foreign: strings.ToUpper(foreign),
		ttl:     ttl,
		Now:     time.Now,
	}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Rate returns the home-currency value of one unit of the given currency.
//
// The home currency is the identity rate 1 with no lookup. Currencies other
// than the one supported foreign currency also return 1: conversion is not
// attempted for them, by policy rather than error. For the foreign currency
// a fresh cache entry is reused; otherwise the source is consulted and the
// result cached. On any lookup failure the cache is left untouched and the
// fallback rate 1 is returned alongside the error.
func (c *Cache) Rate(ctx context.Context, currency string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == c.home || code != c.foreign {
		return 1, nil
	}

	if rate, ok := c.cached(code); ok {
		return rate, nil
	}

	fetched, err := c.source.FetchRates(ctx, code)
	if err != nil {
		return 1, fmt.Errorf("rates: lookup %s->%s failed: %w", code, c.home, err)
	}
	rate, ok := fetched[c.home]
	if !ok {
		return 1, fmt.Errorf("rates: lookup %s->%s failed: no %s rate in response", code, c.home, c.home)
	}

	c.put(code, rate)
	return rate, nil
}

// ToHome converts an amount in the given currency to the home currency.
// A non-nil error means the fallback rate 1 was used; the returned amount
// is still valid and the conversion proceeds best-effort.
func (c *Cache) ToHome(ctx context.Context, amount float64, currency string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == c.home {
		return amount, nil
	}
	rate, err := c.Rate(ctx, code)
	return amount * rate, err
}

// cached returns the stored rate for a currency when it is still within TTL.
func (c *Cache) cached(currency string) (float64, bool) {
	var rate float64
	var fetchedAt string
	err := c.db.QueryRow(
		"SELECT rate, fetched_at FROM rates WHERE currency = ?", currency,
	).Scan(&rate, &fetchedAt)
	if err != nil {
		return 0, false
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return 0, false
	}
	if c.Now().Sub(at) >= c.ttl {
		return 0, false
	}
	return rate, true
}

// put stores a freshly fetched rate. Best-effort: a write failure only
// costs a refetch on the next run.
func (c *Cache) put(currency string, rate float64) {
	_, _ = c.db.Exec(
		"INSERT OR REPLACE INTO rates (currency, rate, fetched_at) VALUES (?, ?, ?)",
		currency, rate, c.Now().UTC().Format(time.RFC3339),
	)
}
