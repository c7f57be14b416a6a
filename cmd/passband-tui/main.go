package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/astrophot/passband/internal/config"
	"github.com/astrophot/passband/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to filter table config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	catalog, err := settings.ToCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in filter tables: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
