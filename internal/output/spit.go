// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/pxqgo/internal/config"
)

// Sort modes accepted by the --sort flag.
const (
	SortByType = "type"
	SortAsIs   = "asis"
)

// Dataset is the single row-set representation shared by every output mode:
// ordered column headers plus records in column order. Table, CSV, TSV,
// JSON, and YAML rendering all branch off this at the final serialization
// step only.
type Dataset struct {
	Headers []string
	Records [][]string
}

// Spit orchestrates filtering, sorting and rendering of a dataset according
// to command flags. A broken pipe while writing means the downstream
// consumer (typically a paginator) stopped reading; that is a quiet,
// successful exit, not an error.
func Spit(ds Dataset, cmd *cli.Command, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	ds = FilterDataset(ds, cmd.String("filter"))
	SortDataset(ds, cmd.String("sort"))

	var err error
	switch output := cmd.String("output"); output {
	case "csv":
		err = writeDelimited(w, ds, ',')
	case "tsv":
		err = writeDelimited(w, ds, '\t')
	case "json":
		err = writeJSON(w, ds)
	case "yaml":
		err = writeYAML(w, ds)
	default:
		err = TableWriter(ds, cmd, w)
	}

	if isBrokenPipe(err) {
		log.Debug("output consumer went away, stopping quietly")
		return nil
	}
	return err
}

// SortDataset orders records ascending, lexicographic across the columns in
// header order, using plain byte comparison. SortAsIs leaves the input
// permutation untouched. The sort is stable, so records with identical
// tuples keep their relative order.
func SortDataset(ds Dataset, mode string) {
	if mode == SortAsIs {
		return
	}
	sort.SliceStable(ds.Records, func(i, j int) bool {
		return lessRecord(ds.Records[i], ds.Records[j])
	})
}

func lessRecord(a, b []string) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// writeDelimited emits the dataset as delimiter-separated text. The header
// record is part of the output contract and is written even when there are
// zero records. encoding/csv handles quoting for fields containing the
// separator, quotes, or line breaks, for tab output as well as comma.
func writeDelimited(w io.Writer, ds Dataset, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(ds.Headers); err != nil {
		return err
	}
	for _, rec := range ds.Records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, ds Dataset) error {
	jsonOutput, err := json.Marshal(datasetMaps(ds))
	if err != nil {
		log.Errorf("writeJSON(): %v", err)
		return err
	}
	if _, err := w.Write(jsonOutput); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeYAML(w io.Writer, ds Dataset) error {
	yamlOutput, err := yaml.Marshal(datasetMaps(ds))
	if err != nil {
		log.Errorf("writeYAML(): %v", err)
		return err
	}
	_, err = w.Write(yamlOutput)
	return err
}

// datasetMaps rebuilds the records as maps keyed by lowercased header name
// for the marshaling outputs. Key order within each object is up to the
// encoder.
func datasetMaps(ds Dataset) []map[string]string {
	out := make([]map[string]string, 0, len(ds.Records))
	for _, rec := range ds.Records {
		m := make(map[string]string, len(ds.Headers))
		for i, h := range ds.Headers {
			if i < len(rec) {
				m[strings.ToLower(h)] = rec[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// TableWriter renders the dataset in a tabular form honoring color and
// padding options. The header row is always present.
func TableWriter(ds Dataset, cmd *cli.Command, w io.Writer) error {
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") && isTerminal(w) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 2)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers(ds.Headers...).
		BorderHeader(false).
		Rows(ds.Records...)

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// isTerminal reports whether the sink is an interactive terminal. Color is
// pointless (and unfriendly to pipes) anywhere else.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isBrokenPipe matches the EPIPE family however deeply the platform wraps
// it, plus in-process pipe closures.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
