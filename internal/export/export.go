package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/astrophot/passband/internal/passband"
)

// Format represents supported catalog listing formats.
type Format int

const (
	// FormatText renders an aligned plain-text table.
	FormatText Format = iota

	// FormatCSV renders comma-separated values with a header row.
	FormatCSV

	// FormatJSON renders an indented JSON array.
	FormatJSON
)

// ParseFormat resolves a format name ("text", "csv", "json").
func ParseFormat(name string) (Format, error) {
	switch name {
	case "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown export format %q", name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Exporter renders a catalog listing as a string in one of the supported
// formats.
//
// Example:
//
//	exporter := export.NewExporter(passband.Default, export.FormatCSV)
//	content, err := exporter.Render()
//	os.WriteFile("filters"+export.FormatCSV.Extension(), []byte(content), 0644)
type Exporter struct {
	catalog *passband.Catalog
	format  Format

	// System, when set, limits the listing to that system's letters.
	System passband.System
}

// NewExporter creates an Exporter for the catalog and format.
func NewExporter(catalog *passband.Catalog, format Format) *Exporter {
	return &Exporter{catalog: catalog, format: format}
}

// row is one listing entry: a letter, its wavelength, and the systems
// that accept it.
type row struct {
	Letter     string   `json:"letter"`
	Wavelength int      `json:"wavelength_nm"`
	Systems    []string `json:"systems"`
}

// Render produces the listing, ready to be written to a file.
func (e *Exporter) Render() (string, error) {
	rows, err := e.rows()
	if err != nil {
		return "", err
	}

	switch e.format {
	case FormatCSV:
		return renderCSV(rows)
	case FormatJSON:
		return renderJSON(rows)
	default:
		return renderText(rows), nil
	}
}

func (e *Exporter) rows() ([]row, error) {
	letters := e.catalog.Letters()
	if e.System.Identified() {
		valid, ok := e.catalog.SystemLetters(e.System)
		if !ok {
			return nil, fmt.Errorf("unknown photometric system %q", e.System)
		}
		var kept []string
		for _, letter := range letters {
			if strings.Contains(valid, letter) {
				kept = append(kept, letter)
			}
		}
		letters = kept
	}

	rows := make([]row, 0, len(letters))
	for _, letter := range letters {
		wl, _ := e.catalog.Wavelength(letter)

		var systems []string
		for _, system := range e.catalog.Systems() {
			valid, _ := e.catalog.SystemLetters(system)
			if strings.Contains(valid, letter) {
				systems = append(systems, string(system))
			}
		}
		sort.Strings(systems)

		rows = append(rows, row{Letter: letter, Wavelength: wl, Systems: systems})
	}
	return rows, nil
}

func renderText(rows []row) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LETTER\tWAVELENGTH (NM)\tSYSTEMS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Letter, r.Wavelength, strings.Join(r.Systems, ", "))
	}
	w.Flush()
	return b.String()
}

func renderCSV(rows []row) (string, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"letter", "wavelength_nm", "systems"}); err != nil {
		return "", err
	}
	for _, r := range rows {
		record := []string{r.Letter, strconv.Itoa(r.Wavelength), strings.Join(r.Systems, " ")}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderJSON(rows []row) (string, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
