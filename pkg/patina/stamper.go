package patina

import (
	"time"

	"github.com/aretw0/patina/pkg/core"
	"github.com/aretw0/patina/pkg/header"
)

// Stamper decides which timestamp fields a note should receive and applies
// them through the header engine. It holds no mutable state; a single
// Stamper may be shared across goroutines.
//
// Policy:
//   - the modified field is refreshed on every stamp (unless disabled);
//   - the created field is only inserted when the header does not carry
//     one yet — an existing creation timestamp is never rewritten.
type Stamper struct {
	settings Settings
}

// NewStamper creates a Stamper for the given settings. Zero-valued
// settings fields are backfilled with defaults.
func NewStamper(settings Settings) *Stamper {
	backfill(&settings)
	return &Stamper{settings: settings}
}

// Fields returns the ordered field list to upsert for a note with the
// given text and file times. An empty result means the note needs no
// rewrite.
func (s *Stamper) Fields(text string, times core.FileTimes) []header.Field {
	var fields []header.Field

	block := header.Extract(text)

	if !s.settings.DisableCreated && !header.HasField(block.Inner, s.settings.CreatedField) {
		fields = append(fields, header.Field{
			Name:  s.settings.CreatedField,
			Value: times.Created.Format(s.settings.DateFormat),
		})
	}

	if !s.settings.DisableModified && s.shouldRefresh(block.Inner, times.Modified) {
		fields = append(fields, header.Field{
			Name:  s.settings.ModifiedField,
			Value: times.Modified.Format(s.settings.DateFormat),
		})
	}

	return fields
}

// shouldRefresh reports whether the modified field is due for an update.
// A field younger than the minimum interval is left alone; without this,
// the stamper's own rewrite (which bumps the file's mtime) would trigger
// another stamp on the next watch event, forever.
func (s *Stamper) shouldRefresh(inner string, modified time.Time) bool {
	prev, ok := header.FieldValue(inner, s.settings.ModifiedField)
	if !ok {
		return true
	}
	t, err := time.ParseInLocation(s.settings.DateFormat, prev, modified.Location())
	if err != nil {
		// Unparseable value, claim the field.
		return true
	}
	age := modified.Sub(t)
	if age < 0 {
		age = -age
	}
	return age >= time.Duration(s.settings.MinIntervalSeconds)*time.Second
}

// StampText returns text with the timestamp fields applied. The input is
// returned unchanged when both fields are disabled or already satisfied.
func (s *Stamper) StampText(text string, times core.FileTimes) string {
	fields := s.Fields(text, times)
	if len(fields) == 0 {
		return text
	}
	return header.Upsert(text, fields)
}
