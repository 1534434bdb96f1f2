package dirctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/louisbranch/staffbook/internal/directory"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// page is the machine-readable list output.
type page struct {
	Rows     []directory.Record `json:"rows" yaml:"rows"`
	Total    int                `json:"total" yaml:"total"`
	Page     int                `json:"page" yaml:"page"`
	PageSize int                `json:"pageSize" yaml:"pageSize"`
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeProjection(w io.Writer, format string, p directory.Projection) error {
	rows := p.Rows
	if rows == nil {
		rows = []directory.Record{}
	}
	out := page{Rows: rows, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, p)
	}
}

func writeTable(w io.Writer, p directory.Projection) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Address", "Phone number", "Email").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, record := range p.Rows {
		t.Row(record.ID, record.FullName, record.Address, record.PhoneNumber, record.Email)
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, pageRange(p))
	return err
}

// pageRange renders the "from-to of total" footer; an empty set reads 0-0.
func pageRange(p directory.Projection) string {
	from, to := p.Range()
	return fmt.Sprintf("%d-%d of %d", from, to, p.Total)
}
