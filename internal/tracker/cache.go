package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// IssueCache represents cached issue list data for one repo+scope.
type IssueCache struct {
	Repo      string    `json:"repo"`
	Scope     Scope     `json:"scope"`
	Issues    []Issue   `json:"issues"`
	UpdatedAt time.Time `json:"updated_at"`
}

// getCachePath returns the cache file path for a repo slug and scope.
func getCachePath(repo string, scope Scope) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	safeKey := strings.ReplaceAll(repo, "/", "--") + "." + string(scope)
	return filepath.Join(cacheDir, "lantern", safeKey+".json")
}

// LoadCache attempts to load cached issues. Returns nil if the cache
// doesn't exist or is for a different repo. Age is not checked here;
// the caller always refreshes in the background.
func LoadCache(repo string, scope Scope) *IssueCache {
	path := getCachePath(repo, scope)

	// Shared (read) lock - blocks if a writer holds the exclusive lock
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cache IssueCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil
	}

	if cache.Repo != repo {
		return nil
	}

	return &cache
}

// SaveCache saves issues to the on-disk cache.
func SaveCache(repo string, scope Scope, issues []Issue) error {
	cache := IssueCache{
		Repo:      repo,
		Scope:     scope,
		Issues:    issues,
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}

	path := getCachePath(repo, scope)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	// Write atomically: temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// ListCached returns issues from cache if available, otherwise
// fetches fresh. fromCache=true tells the caller to refresh in the
// background.
func ListCached(repo string, scope Scope, limit int) ([]Issue, bool, error) {
	if cache := LoadCache(repo, scope); cache != nil {
		return cache.Issues, true, nil
	}

	issues, err := List(repo, scope, limit)
	if err != nil {
		return nil, false, err
	}

	_ = SaveCache(repo, scope, issues)

	return issues, false, nil
}

// ListAndCache fetches fresh issues and saves them to cache.
func ListAndCache(repo string, scope Scope, limit int) ([]Issue, error) {
	issues, err := List(repo, scope, limit)
	if err != nil {
		return nil, err
	}

	_ = SaveCache(repo, scope, issues)

	return issues, nil
}
