package passband

import "fmt"

// NonRecognizedError reports a filter name that matches none of the
// tolerated shapes, or that carries more than one letter candidate.
type NonRecognizedError struct {
	// Name is the offending input, verbatim.
	Name string
}

func (e *NonRecognizedError) Error() string {
	return fmt.Sprintf("cannot recognize passband %q", e.Name)
}

// InvalidLetterError reports a recognized "<System> <Letter>" style name
// whose letter is not among the valid letters of that system. The letter
// itself is syntactically fine; it just does not belong there.
type InvalidLetterError struct {
	System System
	Letter string
}

func (e *InvalidLetterError) Error() string {
	return fmt.Sprintf("letter %q is not a valid %s filter", e.Letter, e.System)
}

// UnknownLetterError reports a bare letter, given without any system
// keyword, that is absent from the global wavelength table.
type UnknownLetterError struct {
	Letter string
}

func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("unknown filter letter %q", e.Letter)
}
