package passband

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"unicode/utf8"
)

// Catalog holds the static filter configuration: the valid letters of
// each photometric system and the single global letter to wavelength
// table. A Catalog is built once and never written afterwards, so all of
// its methods are safe for unsynchronized concurrent use.
type Catalog struct {
	systems     map[System]string
	systemNames []System
	wavelengths map[string]int
	letters     []string // table letters, ascending wavelength
	patterns    []systemPatterns
}

// Default is the built-in catalog: the Johnson, Cousins and Gunn systems
// over a twelve-letter wavelength table. The package-level Parse, All and
// Random operate on it.
var Default = mustCatalog(DefaultSystems(), DefaultWavelengths())

// DefaultSystems returns the built-in system definitions: each system
// name mapped to its ordered string of valid filter letters.
func DefaultSystems() map[System]string {
	return map[System]string{
		Johnson: "UBVRIJHKLMN",
		Cousins: "VRI",
		Gunn:    "UVGR",
	}
}

// DefaultWavelengths returns the built-in letter to wavelength table.
// Values are canonical reference wavelengths in nanometres, keyed by
// letter alone; letters shared between systems (V, R, I, U) resolve to
// one wavelength regardless of the system.
func DefaultWavelengths() map[string]int {
	return map[string]int{
		"U": 365,
		"B": 445,
		"G": 511,
		"V": 551,
		"R": 658,
		"I": 806,
		"J": 1220,
		"H": 1630,
		"K": 2190,
		"L": 3450,
		"M": 4750,
		"N": 10500,
	}
}

// NewCatalog builds a catalog from system definitions and a wavelength
// table. Every letter must be a single character, and every letter used
// by a system must appear in the wavelength table; otherwise the catalog
// is rejected.
func NewCatalog(systems map[System]string, wavelengths map[string]int) (*Catalog, error) {
	for letter := range wavelengths {
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("wavelength table key %q is not a single letter", letter)
		}
	}

	c := &Catalog{
		systems:     make(map[System]string, len(systems)),
		wavelengths: make(map[string]int, len(wavelengths)),
	}
	for letter, wl := range wavelengths {
		c.wavelengths[letter] = wl
		c.letters = append(c.letters, letter)
	}

	for system, letters := range systems {
		if system == "" {
			return nil, fmt.Errorf("photometric system with an empty name")
		}
		for _, r := range letters {
			letter := string(r)
			if _, ok := c.wavelengths[letter]; !ok {
				return nil, fmt.Errorf("%s letter %q missing from the wavelength table", system, letter)
			}
		}
		c.systems[system] = letters
		c.systemNames = append(c.systemNames, system)
	}

	// Deterministic iteration order for parsing and enumeration.
	sort.Slice(c.systemNames, func(i, j int) bool {
		return c.systemNames[i] < c.systemNames[j]
	})
	sort.Slice(c.letters, func(i, j int) bool {
		a, b := c.letters[i], c.letters[j]
		if c.wavelengths[a] != c.wavelengths[b] {
			return c.wavelengths[a] < c.wavelengths[b]
		}
		return a < b
	})

	for _, system := range c.systemNames {
		c.patterns = append(c.patterns, compilePatterns(system))
	}

	return c, nil
}

func mustCatalog(systems map[System]string, wavelengths map[string]int) *Catalog {
	c, err := NewCatalog(systems, wavelengths)
	if err != nil {
		panic(fmt.Sprintf("passband: invalid built-in catalog: %v", err))
	}
	return c
}

// Systems returns the catalog's system names, sorted.
func (c *Catalog) Systems() []System {
	out := make([]System, len(c.systemNames))
	copy(out, c.systemNames)
	return out
}

// SystemLetters returns the ordered valid-letter string of a system and
// whether the system is known to the catalog.
func (c *Catalog) SystemLetters(s System) (string, bool) {
	letters, ok := c.systems[s]
	return letters, ok
}

// Letters returns every letter of the wavelength table, ascending by
// wavelength.
func (c *Catalog) Letters() []string {
	out := make([]string, len(c.letters))
	copy(out, c.letters)
	return out
}

// Wavelength returns the canonical wavelength of a letter and whether the
// letter is in the table.
func (c *Catalog) Wavelength(letter string) (int, bool) {
	wl, ok := c.wavelengths[letter]
	return wl, ok
}

// Wavelengths returns a copy of the letter to wavelength table.
func (c *Catalog) Wavelengths() map[string]int {
	out := make(map[string]int, len(c.wavelengths))
	for letter, wl := range c.wavelengths {
		out[letter] = wl
	}
	return out
}

// All returns one passband per letter of the wavelength table, system
// left unidentified, ascending by wavelength. The wavelengths of the
// returned passbands cover the table's values exactly.
func (c *Catalog) All() []Passband {
	out := make([]Passband, len(c.letters))
	for i, letter := range c.letters {
		out[i] = Passband{Letter: letter, Wavelength: c.wavelengths[letter]}
	}
	return out
}

// Random returns a passband whose letter is drawn uniformly from the
// wavelength table. The result is always structurally valid.
func (c *Catalog) Random() Passband {
	letter := c.letters[rand.IntN(len(c.letters))]
	return Passband{Letter: letter, Wavelength: c.wavelengths[letter]}
}

// Different returns a passband guaranteed to be unequal to p, drawn
// uniformly from the remaining candidates. Candidates are collected up
// front, so this never loops; a degenerate single-letter catalog with no
// alternative left panics rather than hanging.
func (c *Catalog) Different(p Passband) Passband {
	candidates := make([]Passband, 0, len(c.letters))
	for _, x := range c.All() {
		if !x.Equal(p) {
			candidates = append(candidates, x)
		}
	}
	if len(candidates) == 0 {
		panic(fmt.Sprintf("passband: no passband different from %q exists in the catalog", p))
	}
	return candidates[rand.IntN(len(candidates))]
}

// All returns every passband of the Default catalog. See Catalog.All.
func All() []Passband {
	return Default.All()
}

// Random returns a random passband from the Default catalog. See
// Catalog.Random.
func Random() Passband {
	return Default.Random()
}

// Different returns a passband from the Default catalog unequal to p.
// When working with a custom catalog, call Catalog.Different instead.
func (p Passband) Different() Passband {
	return Default.Different(p)
}
