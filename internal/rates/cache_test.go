package rates

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// fakeSource counts fetches and serves a canned rate map or error.
type fakeSource struct {
	rates map[string]float64
	err   error
	calls int
}

func (f *fakeSource) FetchRates(_ context.Context, _ string) (map[string]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func openTestCache(t *testing.T, src Source, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "rates.db"), src, "COP", "USD", ttl)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRateHomeCurrencyIsIdentity(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"COP": 4000}}
	c := openTestCache(t, src, time.Hour)

	rate, err := c.Rate(context.Background(), "COP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 1 {
		t.Errorf("home rate = %v, want 1", rate)
	}
	if src.calls != 0 {
		t.Errorf("home currency triggered %d fetches, want 0", src.calls)
	}
}

func TestRateUnsupportedCurrencyFallsBack(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"COP": 4000}}
	c := openTestCache(t, src, time.Hour)

	rate, err := c.Rate(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 1 {
		t.Errorf("unsupported currency rate = %v, want 1", rate)
	}
	if src.calls != 0 {
		t.Errorf("unsupported currency triggered %d fetches, want 0", src.calls)
	}
}

func TestRateFetchesAndCaches(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"COP": 4000, "EUR": 0.9}}
	c := openTestCache(t, src, time.Hour)

	rate, err := c.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 4000 {
		t.Errorf("rate = %v, want 4000", rate)
	}

	// Second lookup within TTL must reuse the cache.
	rate, err = c.Rate(context.Background(), "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 4000 {
		t.Errorf("cached rate = %v, want 4000", rate)
	}
	if src.calls != 1 {
		t.Errorf("fetches = %d, want 1", src.calls)
	}
}

func TestRateTTLBoundary(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"COP": 4000}}
	c := openTestCache(t, src, time.Hour)

	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Now = func() time.Time { return t0 }

	if _, err := c.Rate(context.Background(), "USD"); err != nil {
		t.Fatalf("priming fetch: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("fetches after prime = %d, want 1", src.calls)
	}

	// One second inside the TTL: reuse, no external call.
	c.Now = func() time.Time { return t0.Add(time.Hour - time.Second) }
	if _, err := c.Rate(context.Background(), "USD"); err != nil {
		t.Fatalf("within-TTL lookup: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("within-TTL lookup fetched; calls = %d, want 1", src.calls)
	}

	// One second past the TTL: refresh.
	src.rates["COP"] = 4100
	c.Now = func() time.Time { return t0.Add(time.Hour + time.Second) }
	rate, err := c.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("post-TTL lookup: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("post-TTL lookup did not refresh; calls = %d, want 2", src.calls)
	}
	if rate != 4100 {
		t.Errorf("refreshed rate = %v, want 4100", rate)
	}
}

func TestRateFailureFallsBackWithoutCaching(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	c := openTestCache(t, src, time.Hour)

	rate, err := c.Rate(context.Background(), "USD")
	if err == nil {
		t.Fatal("expected a warning error from failed lookup")
	}
	if rate != 1 {
		t.Errorf("fallback rate = %v, want 1", rate)
	}

	// Failure must not have been cached: the next lookup tries again.
	src.err = nil
	src.rates = map[string]float64{"COP": 3900}
	rate, err = c.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("recovery lookup: %v", err)
	}
	if rate != 3900 {
		t.Errorf("recovered rate = %v, want 3900", rate)
	}
	if src.calls != 2 {
		t.Errorf("fetches = %d, want 2", src.calls)
	}
}

func TestRateMissingHomeKeyIsFailure(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"EUR": 0.9}}
	c := openTestCache(t, src, time.Hour)

	rate, err := c.Rate(context.Background(), "USD")
	if err == nil {
		t.Fatal("expected error when response lacks the home currency")
	}
	if rate != 1 {
		t.Errorf("fallback rate = %v, want 1", rate)
	}
}

func TestToHome(t *testing.T) {
	src := &fakeSource{rates: map[string]float64{"COP": 4000}}
	c := openTestCache(t, src, time.Hour)

	// Home currency passes through untouched, no lookup.
	amount, err := c.ToHome(context.Background(), 50000, "COP")
	if err != nil || amount != 50000 {
		t.Errorf("ToHome(COP) = %v, %v; want 50000, nil", amount, err)
	}
	if src.calls != 0 {
		t.Errorf("home conversion fetched %d times, want 0", src.calls)
	}

	amount, err = c.ToHome(context.Background(), 10, "USD")
	if err != nil {
		t.Fatalf("ToHome(USD): %v", err)
	}
	if amount != 40000 {
		t.Errorf("ToHome(10 USD) = %v, want 40000", amount)
	}
}

func TestToHomeFailureUsesFallbackRate(t *testing.T) {
	src := &fakeSource{err: errors.New("timeout")}
	c := openTestCache(t, src, time.Hour)

	amount, err := c.ToHome(context.Background(), 10, "USD")
	if err == nil {
		t.Fatal("expected warning error")
	}
	if amount != 10 {
		t.Errorf("fallback conversion = %v, want 10 (rate 1)", amount)
	}
}

func TestCachePersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rates.db")
	src := &fakeSource{rates: map[string]float64{"COP": 4000}}

	c, err := Open(dbPath, src, "COP", "USD", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rate(context.Background(), "USD"); err != nil {
		t.Fatal(err)
	}
	_ = c.Close()

	// A fresh handle over the same file must see the cached entry.
	c2, err := Open(dbPath, src, "COP", "USD", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	defer c2.Close()

	rate, err := c2.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if rate != 4000 {
		t.Errorf("rate after reopen = %v, want 4000", rate)
	}
	if src.calls != 1 {
		t.Errorf("fetches = %d, want 1 (second open should hit cache)", src.calls)
	}
}
