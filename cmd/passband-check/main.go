package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/astrophot/passband/internal/check"
	"github.com/astrophot/passband/internal/config"
	"github.com/astrophot/passband/internal/export"
	"github.com/astrophot/passband/internal/passband"
)

func main() {
	// Command line flags
	var (
		filesFlag   = flag.String("file", "", "Fixture file(s) to check (comma-separated)")
		configFlag  = flag.String("config", "", "Path to filter table config file")
		listFlag    = flag.Bool("list", false, "List the catalog instead of checking names")
		formatFlag  = flag.String("format", "text", "Listing format: text, csv or json")
		systemFlag  = flag.String("system", "", "Restrict the listing to one photometric system")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	names := flag.Args()
	var files []string
	for _, path := range strings.Split(*filesFlag, ",") {
		if path = strings.TrimSpace(path); path != "" {
			files = append(files, path)
		}
	}

	if len(names) == 0 && len(files) == 0 && !*listFlag {
		fmt.Println("Passband Checker - Resolve photometric filter names")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  passband-check \"Johnson V\" \"V (Cousins)\" ...")
		fmt.Println("  passband-check -file filters/Johnson,filters/Gunn")
		fmt.Println("  passband-check -list [-format csv] [-system Johnson]")
		fmt.Println()
		fmt.Println("For interactive mode, use: passband-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load the filter tables
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

	if *listFlag {
		format, err := export.ParseFormat(*formatFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		exporter := export.NewExporter(catalog, format)
		if *systemFlag != "" {
			exporter.System = passband.System(*systemFlag)
		}
		content, err := exporter.Render()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(content)
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	runner := check.NewRunner(catalog, func(event check.ProgressEvent) {
		if event.Level == check.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case check.LevelError:
			prefix = "❌ "
		case check.LevelWarning:
			prefix = "⚠️  "
		case check.LevelSuccess:
			prefix = "✅ "
		case check.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	if len(names) > 0 {
		if err := runner.CheckNames(ctx, names); err != nil {
			fmt.Println("\nCheck cancelled.")
			os.Exit(130)
		}
	}
	if len(files) > 0 {
		if err := runner.CheckFiles(ctx, files); err != nil {
			fmt.Println("\nCheck cancelled.")
			os.Exit(130)
		}
	}

	checked, failed := runner.Counts()
	fmt.Println()
	fmt.Printf("Checked %d entries, %d failed\n", checked, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
