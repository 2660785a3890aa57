package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Sheet ist eine Tabelle mit Kopfzeile, unabhängig vom Ausgabeformat.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
}

func Write(w io.Writer, format string, sheets ...Sheet) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, sheets)
	case FormatTable, "":
		return writeTable(w, sheets)
	}
	return fmt.Errorf("unbekanntes Format %q (table|csv)", format)
}

// writeCSV schreibt alle Tabellen hintereinander, getrennt durch eine Leerzeile.
func writeCSV(w io.Writer, sheets []Sheet) error {
	cw := csv.NewWriter(w)
	for i, s := range sheets {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := cw.Write(s.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(s.Rows); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTable(w io.Writer, sheets []Sheet) error {
	for i, s := range sheets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if s.Title != "" {
			fmt.Fprintln(w, s.Title)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(s.Header, "\t"))
		for _, row := range s.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}
