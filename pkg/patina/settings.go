package patina

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/patina/pkg/adapters/fs"
)

// SettingsFileName is the name of the settings file at the note root.
const SettingsFileName = ".patina.yaml"

// DefaultDateFormat is the Go time layout used for header values,
// equivalent to "YYYY-MM-DD HH:mm:ss".
const DefaultDateFormat = "2006-01-02 15:04:05"

// Settings holds the user-tunable behavior of the stamper.
//
// The disable flags are phrased negatively so the YAML zero value keeps
// both timestamps enabled; a settings file that only overrides the date
// format does not silently turn stamping off.
type Settings struct {
	CreatedField    string   `yaml:"created_field"`
	ModifiedField   string   `yaml:"modified_field"`
	DisableCreated  bool     `yaml:"disable_created"`
	DisableModified bool     `yaml:"disable_modified"`
	DateFormat      string   `yaml:"date_format"`
	Include         []string `yaml:"include"`
	Ignore          []string `yaml:"ignore,omitempty"`
	Locale          string   `yaml:"locale"`
	DebounceMs      int      `yaml:"debounce_ms"`

	// MinIntervalSeconds is the minimum age the modified field must reach
	// before it is refreshed again. It keeps rapid successive saves (and
	// the stamper's own rewrite, which bumps the file's mtime) from
	// producing an endless stamp cycle.
	MinIntervalSeconds int `yaml:"min_interval_seconds"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		CreatedField:       "created",
		ModifiedField:      "modified",
		DateFormat:         DefaultDateFormat,
		Include:            []string{"**/*.md"},
		Locale:             "en",
		DebounceMs:         50,
		MinIntervalSeconds: 60,
	}
}

// backfill fills zero-valued fields with their defaults so partial
// settings files stay valid.
func backfill(s *Settings) {
	d := DefaultSettings()
	if s.CreatedField == "" {
		s.CreatedField = d.CreatedField
	}
	if s.ModifiedField == "" {
		s.ModifiedField = d.ModifiedField
	}
	if s.DateFormat == "" {
		s.DateFormat = d.DateFormat
	}
	if len(s.Include) == 0 {
		s.Include = d.Include
	}
	if s.Locale == "" {
		s.Locale = d.Locale
	}
	if s.DebounceMs <= 0 {
		s.DebounceMs = d.DebounceMs
	}
	if s.MinIntervalSeconds <= 0 {
		s.MinIntervalSeconds = d.MinIntervalSeconds
	}
}

// SettingsStore loads and persists Settings as YAML.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewSettingsStore creates a store for the settings file at path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// SettingsPath returns the conventional settings location for a note root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsFileName)
}

// Load reads the settings file, returning defaults if it does not exist.
func (s *SettingsStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file %s: %w", s.path, err)
	}
	backfill(&settings)
	return settings, nil
}

// Save persists the settings atomically.
func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backfill(&settings)
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(s.path, data, 0644)
}

// Update loads the settings, applies fn, and saves the result.
func (s *SettingsStore) Update(fn func(*Settings)) (Settings, error) {
	settings, err := s.Load()
	if err != nil {
		return Settings{}, err
	}
	fn(&settings)
	if err := s.Save(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
