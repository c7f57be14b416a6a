package passband

import (
	"fmt"
	"strings"
)

// System names a photometric system, such as Johnson or Cousins.
//
// It is a string type rather than a closed enum so that catalogs loaded
// from a settings file can define systems beyond the built-in three.
// The empty string means "no system identified" (bare-letter form).
type System string

// The photometric systems known to the Default catalog.
const (
	Johnson System = "Johnson"
	Cousins System = "Cousins"
	Gunn    System = "Gunn"
)

// Identified returns true if the system was actually identified, i.e. it
// is not the empty bare-letter placeholder.
func (s System) Identified() bool {
	return s != ""
}

// Passband is the canonical identity of a single photometric filter.
//
// It is an immutable value: construct one with Parse, All, Random or
// Different and never modify its fields. Wavelength is derived from
// Letter via the catalog's global table, in nanometres.
//
// Example:
//
//	pb, err := passband.Parse("Johnson V")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pb.System, pb.Letter, pb.Wavelength) // Johnson V 551
type Passband struct {
	// System is the identified photometric system, or "" when the name
	// was a bare letter with no system keyword.
	System System

	// Letter is the single-character filter code, always set.
	Letter string

	// Wavelength is the letter's canonical reference wavelength in nm.
	// It is keyed by letter alone: systems sharing a letter share it.
	Wavelength int
}

// Equal reports whether two passbands denote the same filter.
//
// Both the system and the letter must match; wavelength follows from the
// letter and adds nothing. Note the deliberate asymmetry with Hash, which
// looks at the wavelength only.
func (p Passband) Equal(o Passband) bool {
	return p.System == o.System && p.Letter == o.Letter
}

// Hash returns the passband's hash value: the canonical wavelength of its
// letter.
//
// Two passbands with the same letter but different systems are unequal
// per Equal yet return the same hash. This mirrors the identity model
// (the wavelength table is keyed by letter, not by system) and is kept
// intentionally; containers that assume equal hashes imply equal values
// must not rely on Hash.
func (p Passband) Hash() int {
	return p.Wavelength
}

// Compare orders two passbands: ascending wavelength first, then letter,
// then system name. The trailing tie-breaks make the order total and
// deterministic even for letters that share a wavelength.
func Compare(a, b Passband) int {
	if a.Wavelength != b.Wavelength {
		if a.Wavelength < b.Wavelength {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Letter, b.Letter); c != 0 {
		return c
	}
	return strings.Compare(string(a.System), string(b.System))
}

// Less reports whether p sorts before o. See Compare.
func (p Passband) Less(o Passband) bool {
	return Compare(p, o) < 0
}

// String renders the passband in a form Parse accepts again: "V" for the
// bare form, "Johnson V" when the system is known. The round trip
// Parse(p.String()) always yields a passband equal to p.
func (p Passband) String() string {
	if !p.System.Identified() {
		return p.Letter
	}
	return fmt.Sprintf("%s %s", p.System, p.Letter)
}
