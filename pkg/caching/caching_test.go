package caching

import (
	"testing"
	"time"
)

func TestPageCache_RoundTrip(t *testing.T) {
	cache, err := NewPageCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewPageCache() error = %v", err)
	}

	url := "https://www.faa.gov/training_testing/testing/acs"
	body := []byte("<html>acs page</html>")

	if _, ok := cache.Get(url); ok {
		t.Error("Get() before Set() should miss")
	}

	if err := cache.Set(url, body); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get(url)
	if !ok {
		t.Fatal("Get() after Set() should hit")
	}
	if string(got) != string(body) {
		t.Errorf("Get() = %q, want %q", got, body)
	}
}

func TestPageCache_Expiry(t *testing.T) {
	cache, err := NewPageCache(t.TempDir(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewPageCache() error = %v", err)
	}

	url := "https://www.faa.gov/training_testing/testing/acs"
	if err := cache.Set(url, []byte("stale")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if _, ok := cache.Get(url); ok {
		t.Error("Get() after TTL should miss")
	}
}

func TestPageCache_DistinctURLs(t *testing.T) {
	cache, err := NewPageCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewPageCache() error = %v", err)
	}

	if err := cache.Set("https://example.com/a", []byte("a")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Set("https://example.com/b", []byte("b")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	a, _ := cache.Get("https://example.com/a")
	b, _ := cache.Get("https://example.com/b")
	if string(a) != "a" || string(b) != "b" {
		t.Errorf("cache entries collided: a=%q b=%q", a, b)
	}
}
