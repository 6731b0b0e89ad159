package reactivity_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/patina"
)

// setupWatchTest initializes a note root with a running service.
// It returns the root path and a cancel function that stops the watcher.
func setupWatchTest(t *testing.T) (string, context.CancelFunc) {
	t.Helper()
	tmp := t.TempDir()

	settings := patina.DefaultSettings()
	settings.DebounceMs = 20

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, err := patina.New(tmp,
		patina.WithSettings(settings),
		patina.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not shut down")
		}
	})

	// Give the watcher a moment to register the tree (naive but effective)
	time.Sleep(100 * time.Millisecond)

	return tmp, cancel
}

const stampedNote = "---\ncreated: 2024-06-01 12:00:00\nmodified: 2024-06-01 12:00:00\n---\n\n# Hello\n"

func TestWatch_StampsNewNote(t *testing.T) {
	tmp, _ := setupWatchTest(t)

	target := filepath.Join(tmp, "new-note.md")
	require.NoError(t, os.WriteFile(target, []byte("# Hello\n"), 0644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && string(data) == stampedNote
	}, 3*time.Second, 20*time.Millisecond, "note was not stamped")
}

func TestWatch_StampsModifiedNote(t *testing.T) {
	tmp, _ := setupWatchTest(t)

	target := filepath.Join(tmp, "existing.md")
	require.NoError(t, os.WriteFile(target, []byte("old body\n"), 0644))

	// Wait for the creation stamp, then modify.
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && len(data) > len("old body\n")
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(target, []byte("# Hello\n"), 0644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && string(data) == stampedNote
	}, 3*time.Second, 20*time.Millisecond, "modified note was not restamped")
}

// The stamper's own rewrite must not trigger an endless stamp loop.
func TestWatch_IgnoreSelf(t *testing.T) {
	tmp, _ := setupWatchTest(t)

	target := filepath.Join(tmp, "self.md")
	require.NoError(t, os.WriteFile(target, []byte("# Hello\n"), 0644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && string(data) == stampedNote
	}, 3*time.Second, 20*time.Millisecond)

	// The content must stay put once stamped.
	stat := func() time.Time {
		info, err := os.Stat(target)
		require.NoError(t, err)
		return info.ModTime()
	}
	stamped := stat()
	time.Sleep(300 * time.Millisecond)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, stampedNote, string(data))
	assert.Equal(t, stamped, stat(), "file was rewritten after the stamp settled")
}

func TestWatch_NonMatchingFilesAreLeftAlone(t *testing.T) {
	tmp, _ := setupWatchTest(t)

	target := filepath.Join(tmp, "data.txt")
	require.NoError(t, os.WriteFile(target, []byte("raw data"), 0644))

	time.Sleep(300 * time.Millisecond)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "raw data", string(data))
}
