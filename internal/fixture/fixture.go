package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one parsed fixture line: a display name and the letter the
// parser is expected to extract from it.
type Entry struct {
	// Name is the filter name as written, e.g. "Johnson V".
	Name string

	// Letter is the expected single-character filter code, e.g. "V".
	Letter string

	// Line is the 1-based line number the entry came from.
	Line int
}

// pairPattern matches a two-element literal pair, with either quote
// style: ("Johnson V", "V") or ('Johnson V', 'V').
var pairPattern = regexp.MustCompile(
	`^\(\s*(?:"([^"]*)"|'([^']*)')\s*,\s*(?:"([^"]*)"|'([^']*)')\s*\)$`)

// Read parses fixture entries from r. Blank and '#' comment lines are
// skipped; any other line that is not a two-element pair is an error
// carrying its line number.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		m := pairPattern.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("line %d: %q is not a (name, letter) pair", line, text)
		}

		entries = append(entries, Entry{
			Name:   firstOf(m[1], m[2]),
			Letter: firstOf(m[3], m[4]),
			Line:   line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ReadFile parses fixture entries from the file at path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// firstOf returns the submatch that actually captured. Exactly one of
// the two alternatives is non-empty unless the literal itself was empty,
// in which case empty is the right answer anyway.
func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
