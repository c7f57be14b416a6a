// Package passband identifies astronomical photometric filters.
//
// Observers write filter names in wildly inconsistent ways: a FITS header
// may say "Johnson V", another "V (Johnson)", a third just "V". This
// package parses those loosely formatted names into a canonical identity,
// a (photometric system, filter letter) pair with a reference wavelength
// attached, and provides comparison, hashing, enumeration and random
// sampling on top of it.
//
// # Parsing
//
// Parse accepts exactly four shapes of input:
//
//	passband.Parse("Johnson V")   // <System> <Letter>
//	passband.Parse("V Johnson")   // <Letter> <System>
//	passband.Parse("V (Johnson)") // <Letter> (<System>)
//	passband.Parse("V")           // bare letter, system unknown
//
// Anything else fails with a typed error: *NonRecognizedError for a
// malformed or ambiguous name, *InvalidLetterError when the letter is not
// valid for the named system, and *UnknownLetterError when a bare letter
// is not a known filter at all. Use errors.As to tell them apart.
//
// # Ordering, equality and hashing
//
// Passbands order by wavelength, so sorting a slice of them arranges the
// filters bluest first. Equality compares both the system and the letter.
// Hash, however, returns only the letter's wavelength: "Johnson V" and
// "Cousins V" are unequal yet hash identically. This asymmetry is part of
// the contract; do not use Hash where distinct-but-equal-hash values must
// not collide.
//
// # Catalog
//
// The set of known systems, their valid letters, and the letter to
// wavelength table live in a Catalog. The package-level functions use the
// built-in Default catalog; a custom Catalog can be built with NewCatalog
// (see the config package for loading one from a settings file). Catalogs
// are never written after construction and are safe for concurrent use.
package passband
