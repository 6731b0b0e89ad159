package patina

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsDevRun(t *testing.T) {
	// The test binary itself is a dev run.
	if !IsDevRun() {
		t.Error("IsDevRun should be true under go test")
	}
}

func TestResolveRootPath(t *testing.T) {
	t.Run("No Force Passes Through", func(t *testing.T) {
		if got := ResolveRootPath("/home/user/notes", false); got != "/home/user/notes" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("No Force Empty Defaults To Dot", func(t *testing.T) {
		if got := ResolveRootPath("", false); got != "." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Temp Paths Are Trusted", func(t *testing.T) {
		tmp := t.TempDir()
		if got := ResolveRootPath(tmp, true); got != filepath.Clean(tmp) {
			t.Errorf("got %q, want %q", got, tmp)
		}
	})

	t.Run("Non Temp Paths Are Rerooted", func(t *testing.T) {
		got := ResolveRootPath("/home/user/notes", true)
		wantBase := filepath.Join(os.TempDir(), "patina-dev")
		if !strings.HasPrefix(got, wantBase) {
			t.Errorf("got %q, want prefix %q", got, wantBase)
		}
		if filepath.Base(got) != "notes" {
			t.Errorf("got %q, want base %q", got, "notes")
		}
	})

	t.Run("Dot Reroots To Default", func(t *testing.T) {
		got := ResolveRootPath(".", true)
		want := filepath.Join(os.TempDir(), "patina-dev", "default")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
