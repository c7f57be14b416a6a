// Package export renders passband catalog listings.
//
// Three formats are supported: an aligned text table for terminals, CSV
// for spreadsheets, and JSON for downstream tooling. The listing can
// cover the whole wavelength table or be restricted to one photometric
// system.
package export
