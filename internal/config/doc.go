// Package config loads and saves the filter table configuration.
//
// The passband catalog ships with built-in Johnson, Cousins and Gunn
// tables; observatories with site-specific filter wheels can override or
// extend them through a small JSON settings file:
//
//	{
//	  "systems": {
//	    "Johnson": "UBVRIJHKLMN",
//	    "Stromgren": "UVBY"
//	  },
//	  "wavelengths": {
//	    "U": 365, "B": 445, "V": 551, "Y": 547
//	  }
//	}
//
// # Loading
//
//	settings, err := config.Load("/path/to/filters.json")
//	if err != nil {
//	    // a missing file silently falls back to the defaults
//	}
//	catalog, err := settings.ToCatalog()
//
// ToCatalog validates the tables: a system letter absent from the
// wavelength table is a configuration error, never a silent gap.
package config
