package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// testClock is a settable clock for stores under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.now = now
}

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.json")
}

// openTestStore opens a store on a fresh file with a clock at baseTime.
func openTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()
	return openTestStoreAt(t, storePath(t))
}

func openTestStoreAt(t *testing.T, path string) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{now: baseTime}
	store, err := Open(path, OpenOptions{Now: clock.Now})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, clock
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustAdd(t *testing.T, store *Store, title string, expiresIn time.Duration, bullets ...string) *Task {
	t.Helper()
	items := make([]Bullet, 0, len(bullets))
	for _, text := range bullets {
		items = append(items, Bullet{Text: text})
	}
	added, err := store.Add(title, AddOptions{
		ExpiresAt: store.Now().Add(expiresIn),
		Bullets:   items,
	})
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return added
}
