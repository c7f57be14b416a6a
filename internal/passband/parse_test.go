package passband

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/astrophot/passband/internal/fixture"
)

func TestParse_RejectedShapes(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"\t  ",
		"Johnson",
		"Cousins",
		"Johnson(V)",
		"V(Johnson)",
		"Johnson (V)",
		"(Johnson) V",
		"BV",
		"BV Johnson",
		"Johnson BV",
		"BV (Johnson)",
		"Johnson Cousins",
		"V Johnson V",
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := Parse(input)
			var nre *NonRecognizedError
			if !errors.As(err, &nre) {
				t.Errorf("Parse(%q) = %v, want *NonRecognizedError", input, err)
			}
		})
	}
}

func TestParse_BareLetters(t *testing.T) {
	for c := 'A'; c <= 'Z'; c++ {
		letter := string(c)

		pb, err := Parse(letter)
		wl, known := Default.Wavelength(letter)

		if known {
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", letter, err)
				continue
			}
			if pb.Letter != letter {
				t.Errorf("Parse(%q).Letter = %q", letter, pb.Letter)
			}
			if pb.System.Identified() {
				t.Errorf("Parse(%q).System = %q, want unidentified", letter, pb.System)
			}
			if pb.Wavelength != wl {
				t.Errorf("Parse(%q).Wavelength = %d, want %d", letter, pb.Wavelength, wl)
			}
		} else {
			var ule *UnknownLetterError
			if !errors.As(err, &ule) {
				t.Errorf("Parse(%q) = %v, want *UnknownLetterError", letter, err)
			}
		}
	}
}

func TestParse_Arrangements(t *testing.T) {
	for _, system := range Default.Systems() {
		letters, _ := Default.SystemLetters(system)
		for _, r := range letters {
			letter := string(r)
			names := []string{
				fmt.Sprintf("%s %s", system, letter),
				fmt.Sprintf("%s %s", letter, system),
				fmt.Sprintf("%s (%s)", letter, system),
			}

			for _, name := range names {
				pb, err := Parse(name)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", name, err)
					continue
				}
				if pb.System != system {
					t.Errorf("Parse(%q).System = %q, want %q", name, pb.System, system)
				}
				if pb.Letter != letter {
					t.Errorf("Parse(%q).Letter = %q, want %q", name, pb.Letter, letter)
				}
			}
		}
	}
}

func TestParse_InternalWhitespace(t *testing.T) {
	inputs := []string{
		"Johnson   V",
		"  Johnson V",
		"Johnson V  ",
		"V    Johnson",
		"V   (Johnson)",
		"\tJohnson\tV\t",
	}

	for _, input := range inputs {
		pb, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", input, err)
			continue
		}
		if pb.System != Johnson || pb.Letter != "V" {
			t.Errorf("Parse(%q) = %v, want Johnson V", input, pb)
		}
	}
}

func TestParse_InvalidSystemLetters(t *testing.T) {
	for _, system := range Default.Systems() {
		valid, _ := Default.SystemLetters(system)
		for c := 'A'; c <= 'Z'; c++ {
			letter := string(c)
			if containsLetter(valid, letter) {
				continue
			}
			names := []string{
				fmt.Sprintf("%s %s", system, letter),
				fmt.Sprintf("%s %s", letter, system),
				fmt.Sprintf("%s (%s)", letter, system),
			}
			for _, name := range names {
				_, err := Parse(name)
				var ile *InvalidLetterError
				if !errors.As(err, &ile) {
					t.Errorf("Parse(%q) = %v, want *InvalidLetterError", name, err)
					continue
				}
				if ile.System != system || ile.Letter != letter {
					t.Errorf("Parse(%q) error = %+v, want system %q letter %q", name, ile, system, letter)
				}
			}
		}
	}
}

func TestParse_AmbiguousLetterPairs(t *testing.T) {
	for _, system := range Default.Systems() {
		valid, _ := Default.SystemLetters(system)
		for _, a := range valid {
			for _, b := range valid {
				if a == b {
					continue
				}
				pair := string(a) + string(b)
				names := []string{
					fmt.Sprintf("%s %s", pair, system),
					fmt.Sprintf("%s %s", system, pair),
					fmt.Sprintf("%s (%s)", pair, system),
				}
				for _, name := range names {
					_, err := Parse(name)
					var nre *NonRecognizedError
					if !errors.As(err, &nre) {
						t.Errorf("Parse(%q) = %v, want *NonRecognizedError", name, err)
					}
				}
			}
		}
	}
}

func TestParse_Fixtures(t *testing.T) {
	for _, system := range Default.Systems() {
		t.Run(string(system), func(t *testing.T) {
			path := filepath.Join("testdata", "filters", string(system))
			entries, err := fixture.ReadFile(path)
			if err != nil {
				t.Fatalf("reading fixtures: %v", err)
			}
			if len(entries) == 0 {
				t.Fatalf("no fixture entries in %s", path)
			}

			for _, e := range entries {
				pb, err := Parse(e.Name)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", e.Name, err)
					continue
				}
				if pb.System != system {
					t.Errorf("Parse(%q).System = %q, want %q", e.Name, pb.System, system)
				}
				if pb.Letter != e.Letter {
					t.Errorf("Parse(%q).Letter = %q, want %q", e.Name, pb.Letter, e.Letter)
				}
			}
		})
	}
}

func TestParse_FailureLeavesCatalogIntact(t *testing.T) {
	if _, err := Parse("Johnson(V)"); err == nil {
		t.Fatal("expected failure")
	}

	pb, err := Parse("Johnson V")
	if err != nil {
		t.Fatalf("Parse after failed parse: %v", err)
	}
	if pb.Letter != "V" || pb.System != Johnson {
		t.Errorf("Parse after failed parse = %v", pb)
	}
}

func TestParse_CustomCatalog(t *testing.T) {
	catalog, err := NewCatalog(
		map[System]string{"Stromgren": "UVBY"},
		map[string]int{"U": 365, "V": 551, "B": 445, "Y": 547},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	pb, err := catalog.Parse("Stromgren Y")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pb.System != "Stromgren" || pb.Letter != "Y" || pb.Wavelength != 547 {
		t.Errorf("Parse(Stromgren Y) = %+v", pb)
	}

	// The built-in systems do not exist in a custom catalog.
	if _, err := catalog.Parse("Johnson V"); err == nil {
		t.Error("custom catalog recognized Johnson, want failure")
	}
}

func containsLetter(letters, letter string) bool {
	for _, r := range letters {
		if string(r) == letter {
			return true
		}
	}
	return false
}
