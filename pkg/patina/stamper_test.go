package patina

import (
	"testing"
	"time"

	"github.com/aretw0/patina/pkg/core"
)

var (
	testCreated  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testModified = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func testTimes() core.FileTimes {
	return core.FileTimes{Created: testCreated, Modified: testModified}
}

func TestStampText(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		input    string
		want     string
	}{
		{
			name:     "Insert Both On Bare Note",
			settings: DefaultSettings(),
			input:    "# Note\n",
			want:     "---\ncreated: 2024-01-01 00:00:00\nmodified: 2024-06-01 12:00:00\n---\n\n# Note\n",
		},
		{
			name:     "Existing Created Is Never Rewritten",
			settings: DefaultSettings(),
			input:    "---\ncreated: 2020-05-05 05:05:05\n---\nbody",
			want:     "---\ncreated: 2020-05-05 05:05:05\nmodified: 2024-06-01 12:00:00\n---\nbody",
		},
		{
			name:     "Stale Modified Is Refreshed",
			settings: DefaultSettings(),
			input:    "---\nmodified: 2023-01-01 00:00:00\n---\nbody",
			want:     "---\ncreated: 2024-01-01 00:00:00\nmodified: 2024-06-01 12:00:00\n---\nbody",
		},
		{
			name:     "Fresh Modified Is Left Alone",
			settings: DefaultSettings(),
			input:    "---\ncreated: 2020-01-01 00:00:00\nmodified: 2024-06-01 11:59:30\n---\nbody",
			want:     "---\ncreated: 2020-01-01 00:00:00\nmodified: 2024-06-01 11:59:30\n---\nbody",
		},
		{
			name: "Disabled Created",
			settings: Settings{
				DisableCreated: true,
			},
			input: "# Note\n",
			want:  "---\nmodified: 2024-06-01 12:00:00\n---\n\n# Note\n",
		},
		{
			name: "Disabled Modified",
			settings: Settings{
				DisableModified: true,
			},
			input: "# Note\n",
			want:  "---\ncreated: 2024-01-01 00:00:00\n---\n\n# Note\n",
		},
		{
			name: "Both Disabled Is A No Op",
			settings: Settings{
				DisableCreated:  true,
				DisableModified: true,
			},
			input: "# Note\n",
			want:  "# Note\n",
		},
		{
			name: "Custom Field Names",
			settings: Settings{
				CreatedField:  "date-created",
				ModifiedField: "date-updated",
			},
			input: "body",
			want:  "---\ndate-created: 2024-01-01 00:00:00\ndate-updated: 2024-06-01 12:00:00\n---\n\nbody",
		},
		{
			name: "Custom Date Format",
			settings: Settings{
				DateFormat: "2006-01-02",
			},
			input: "body",
			want:  "---\ncreated: 2024-01-01\nmodified: 2024-06-01\n---\n\nbody",
		},
		{
			name:     "Unparseable Modified Is Claimed",
			settings: DefaultSettings(),
			input:    "---\ncreated: 2020-01-01 00:00:00\nmodified: yesterday\n---\nbody",
			want:     "---\ncreated: 2020-01-01 00:00:00\nmodified: 2024-06-01 12:00:00\n---\nbody",
		},
		{
			name:     "Unrelated Fields Survive",
			settings: DefaultSettings(),
			input:    "---\ntitle: hi\ntags: a, b\ncreated: 2020-01-01 00:00:00\n---\nbody",
			want:     "---\ntitle: hi\ntags: a, b\ncreated: 2020-01-01 00:00:00\nmodified: 2024-06-01 12:00:00\n---\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStamper(tt.settings)
			got := s.StampText(tt.input, testTimes())
			if got != tt.want {
				t.Errorf("StampText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// A second stamp with identical times must change nothing: the created
// field is already present and the modified field is within the minimum
// interval of itself.
func TestStampTextIdempotent(t *testing.T) {
	s := NewStamper(DefaultSettings())

	docs := []string{
		"",
		"# Note\n",
		"---\ntitle: hi\n---\nbody",
		"---\ncreated: 2020-01-01 00:00:00\n---\nbody",
	}
	for _, d := range docs {
		once := s.StampText(d, testTimes())
		twice := s.StampText(once, testTimes())
		if once != twice {
			t.Errorf("StampText not idempotent for %q:\n first: %q\nsecond: %q", d, once, twice)
		}
	}
}

func TestShouldRefreshInterval(t *testing.T) {
	s := NewStamper(DefaultSettings())

	tests := []struct {
		name  string
		inner string
		now   time.Time
		want  bool
	}{
		{"No Field", "title: hi", testModified, true},
		{"Old Value", "modified: 2024-06-01 11:00:00", testModified, true},
		{"Exactly At Interval", "modified: 2024-06-01 11:59:00", testModified, true},
		{"Within Interval", "modified: 2024-06-01 11:59:30", testModified, false},
		{"Same Instant", "modified: 2024-06-01 12:00:00", testModified, false},
		{"Future Within Interval", "modified: 2024-06-01 12:00:30", testModified, false},
		{"Garbage Value", "modified: not-a-date", testModified, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.shouldRefresh(tt.inner, tt.now); got != tt.want {
				t.Errorf("shouldRefresh(%q) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}
