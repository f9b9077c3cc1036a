package tracker

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	issues := []Issue{
		{Number: 1, Title: "First", State: StateOpen, Author: "octocat", CreatedAt: time.Now().UTC()},
		{Number: 2, Title: "Second", State: StateClosed, Author: "hubber"},
	}

	if err := SaveCache("acme/widget", ScopeOpen, issues); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	cache := LoadCache("acme/widget", ScopeOpen)
	if cache == nil {
		t.Fatal("LoadCache returned nil for saved cache")
	}
	if cache.Repo != "acme/widget" {
		t.Errorf("Expected repo acme/widget, got %q", cache.Repo)
	}
	if len(cache.Issues) != 2 {
		t.Fatalf("Expected 2 cached issues, got %d", len(cache.Issues))
	}
	if cache.Issues[0].Title != "First" {
		t.Errorf("Expected title 'First', got %q", cache.Issues[0].Title)
	}
	if cache.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}
}

func TestCacheMissForOtherRepo(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if err := SaveCache("acme/widget", ScopeOpen, []Issue{{Number: 1}}); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	if cache := LoadCache("acme/other", ScopeOpen); cache != nil {
		t.Error("Expected nil cache for a different repo")
	}
	if cache := LoadCache("acme/widget", ScopeClosed); cache != nil {
		t.Error("Expected nil cache for a different scope")
	}
}

func TestCacheMissWhenEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if cache := LoadCache("acme/widget", ScopeOpen); cache != nil {
		t.Error("Expected nil cache on empty cache dir")
	}
}
