package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// printer renders command results as a table or as JSON.
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) (*printer, error) {
	switch format {
	case outputTable, outputJSON:
		return &printer{out: out, format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format %q: must be %s or %s", format, outputTable, outputJSON)
}

// print writes value as JSON, or as a table with the given header and rows.
func (p *printer) print(value any, header []any, rows [][]any) error {
	if p.format == outputJSON {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow(header...)
	for _, row := range rows {
		table.AddRow(row...)
	}
	_, err := fmt.Fprintln(p.out, table)
	return err
}

// message writes a status line in table mode, or value as JSON.
func (p *printer) message(value any, format string, args ...any) error {
	if p.format == outputJSON {
		return p.print(value, nil, nil)
	}
	_, err := fmt.Fprintf(p.out, format+"\n", args...)
	return err
}
