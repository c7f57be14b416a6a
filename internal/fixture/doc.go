// Package fixture reads filter fixture files.
//
// A fixture file lists filter descriptors one per line, each a
// two-element literal pair: the display name as an observer would write
// it, and the letter the parser is expected to identify. Blank lines and
// lines starting with '#' are ignored. Single and double quotes are both
// accepted:
//
//	# Johnson-Morgan filters
//	("Johnson V", "V")
//	('U (Johnson)', 'U')
//
// The format is a test-data convention shared with the checker CLI; the
// passband core itself never reads it.
package fixture
