package passband

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// systemPatterns holds the compiled recognizers for the three tolerated
// arrangements of one system's name around a letter token.
type systemPatterns struct {
	system System
	shapes [3]*regexp.Regexp
}

// compilePatterns builds the recognizers for a system name, one per
// tolerated arrangement: "Johnson V", "V Johnson" and "V (Johnson)".
// The captured token is whatever sits in the letter position; Parse
// decides afterwards whether it is an admissible single letter.
func compilePatterns(system System) systemPatterns {
	name := regexp.QuoteMeta(string(system))
	return systemPatterns{
		system: system,
		shapes: [3]*regexp.Regexp{
			regexp.MustCompile(`^` + name + `\s+(\S+)$`),
			regexp.MustCompile(`^(\S+)\s+` + name + `$`),
			regexp.MustCompile(`^(\S+)\s+\(` + name + `\)$`),
		},
	}
}

// Parse resolves a loosely formatted filter name against the catalog.
//
// The tolerated shapes are exactly "<System> <Letter>", "<Letter>
// <System>", "<Letter> (<System>)" and a bare "<Letter>"; system names
// match case-sensitively and internal whitespace is tolerated. Everything
// else, including unspaced bracket variants like "Johnson(V)" and any
// input carrying more than one letter candidate ("Johnson BV"), fails
// with *NonRecognizedError. A recognized shape whose letter is not valid
// for the named system fails with *InvalidLetterError; a bare letter
// absent from the wavelength table fails with *UnknownLetterError.
//
// Parsing is pure: a failed call has no effect on the catalog or on
// later calls.
func (c *Catalog) Parse(name string) (Passband, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Passband{}, &NonRecognizedError{Name: name}
	}

	for _, sp := range c.patterns {
		for _, shape := range sp.shapes {
			m := shape.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			letter := m[1]
			if utf8.RuneCountInString(letter) != 1 {
				// More than one letter candidate: do not guess.
				return Passband{}, &NonRecognizedError{Name: name}
			}
			if !strings.Contains(c.systems[sp.system], letter) {
				return Passband{}, &InvalidLetterError{System: sp.system, Letter: letter}
			}
			return Passband{
				System:     sp.system,
				Letter:     letter,
				Wavelength: c.wavelengths[letter],
			}, nil
		}
	}

	// No system keyword anywhere: bare-letter form.
	if utf8.RuneCountInString(trimmed) != 1 {
		return Passband{}, &NonRecognizedError{Name: name}
	}
	wl, ok := c.wavelengths[trimmed]
	if !ok {
		return Passband{}, &UnknownLetterError{Letter: trimmed}
	}
	return Passband{Letter: trimmed, Wavelength: wl}, nil
}

// Parse resolves a filter name against the Default catalog. See
// Catalog.Parse.
func Parse(name string) (Passband, error) {
	return Default.Parse(name)
}
