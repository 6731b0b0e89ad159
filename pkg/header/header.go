// Package header locates and rewrites the frontmatter-style header block
// at the top of a document.
//
// The package is deliberately dumb: it treats field names and values as
// opaque strings, never parses the block as YAML, and performs no I/O.
// Every function is a pure transformation over its input text, so callers
// may invoke them concurrently without coordination.
package header

import (
	"regexp"
	"strings"
)

// Marker is the line that opens and closes a header block.
const Marker = "---"

// blockRe matches a header block anchored at the very start of the document.
// The match is non-greedy: the block ends at the nearest following marker
// line, so a literal "---" line in the body terminates it early.
var blockRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)

// Field is a single name/value pair destined for the header block.
// Fields are passed as an ordered slice rather than a map so that the
// textual order of newly appended lines is deterministic; the final set of
// lines does not depend on order because each name is keyed independently.
type Field struct {
	Name  string
	Value string
}

// Block describes the header block found at the start of a document.
type Block struct {
	// Inner is the text strictly between the opening and closing marker
	// lines. Empty if no block was found.
	Inner string
	// Found reports whether the document starts with a marker-delimited
	// block at offset 0.
	Found bool

	// end is the offset just past the closing marker, used to splice the
	// rewritten block back in front of the untouched body.
	end int
}

// Extract locates the header block at the start of text.
// Documents without a block yield a zero Block: callers treat the whole
// text as body.
func Extract(text string) Block {
	m := blockRe.FindStringSubmatchIndex(text)
	if m == nil {
		return Block{}
	}
	return Block{
		Inner: text[m[2]:m[3]],
		Found: true,
		end:   m[1],
	}
}

// fieldRe matches the full field line for name, anchored to line start.
// Anchoring matters: "created" must not match a "createdAt: ..." line.
func fieldRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `:.*$`)
}

// HasField reports whether inner contains a field line for name.
// Matching is case-sensitive and anchored to the beginning of a line.
func HasField(inner, name string) bool {
	return fieldRe(name).MatchString(inner)
}

// FieldValue returns the value portion of the first field line for name,
// with surrounding whitespace trimmed.
func FieldValue(inner, name string) (string, bool) {
	loc := fieldRe(name).FindStringIndex(inner)
	if loc == nil {
		return "", false
	}
	line := inner[loc[0]:loc[1]]
	return strings.TrimSpace(line[len(name)+1:]), true
}

// Upsert returns text with every field set to its given value inside the
// header block, inserting a block if none exists. Existing lines for a
// field are rewritten in place (first occurrence wins); unknown fields are
// appended at the end of the block in the order given. All other header
// lines and the entire body are preserved byte for byte.
//
// Upsert is idempotent: applying the same fields to its own output yields
// identical text.
func Upsert(text string, fields []Field) string {
	block := Extract(text)
	inner := block.Inner

	for _, f := range fields {
		line := f.Name + ": " + f.Value
		re := fieldRe(f.Name)
		if loc := re.FindStringIndex(inner); loc != nil {
			inner = inner[:loc[0]] + line + inner[loc[1]:]
		} else {
			inner += "\n" + line
		}
	}

	inner = strings.TrimSpace(inner)

	if block.Found {
		return Marker + "\n" + inner + "\n" + Marker + text[block.end:]
	}

	// No block and nothing to write: leave the document alone rather than
	// prepending an empty fence.
	if len(fields) == 0 {
		return text
	}

	return Marker + "\n" + inner + "\n" + Marker + "\n\n" + text
}
