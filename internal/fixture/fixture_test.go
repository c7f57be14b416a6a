package fixture

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := `
# Johnson-Morgan filters
("Johnson V", "V")
('U (Johnson)', 'U')

("B Johnson", "B")
`
	entries, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{
		{Name: "Johnson V", Letter: "V", Line: 3},
		{Name: "U (Johnson)", Letter: "U", Line: 4},
		{Name: "B Johnson", Letter: "B", Line: 6},
	}

	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestRead_MalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing brackets", `"Johnson V", "V"`},
		{"single element", `("Johnson V")`},
		{"unquoted", `(Johnson V, V)`},
		{"mismatched quotes", `("Johnson V', "V")`},
		{"trailing junk", `("Johnson V", "V") extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Read(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestRead_ErrorCarriesLineNumber(t *testing.T) {
	input := "# comment\n(\"Johnson V\", \"V\")\nbogus line\n"
	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestRead_Empty(t *testing.T) {
	entries, err := Read(strings.NewReader("\n# nothing here\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from comment-only input, want 0", len(entries))
	}
}
