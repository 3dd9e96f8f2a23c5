package tables

import (
	"errors"
	"strings"
)

// Names of the tables a solicitation document carries.
const (
	BillOfQuantities = "Bill_of_Quantities_and_Prices"
	MaterialsSpecs   = "Materials_Specifications_Table"
	EquipmentSpecs   = "Equipment_Specifications_Table"
	WorkersTable     = "Workers_Table"
	DefaultTableName = BillOfQuantities
)

const (
	columnSeparator    = "|"
	separatorRowMarker = "-"
)

var (
	ErrEmptyText = errors.New("text is empty")
	ErrNoTable   = errors.New("no pipe-delimited table found")
)

var knownNames = map[string]bool{
	BillOfQuantities: true,
	MaterialsSpecs:   true,
	EquipmentSpecs:   true,
	WorkersTable:     true,
}

// IsKnown reports whether name is one of the document table names.
func IsKnown(name string) bool {
	return knownNames[name]
}

// Names lists the document table names in document order.
func Names() []string {
	return []string{BillOfQuantities, MaterialsSpecs, EquipmentSpecs, WorkersTable}
}

type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Parse extracts a table from pipe-delimited model output. Lines without a
// pipe are commentary and skipped; the first table line is the header row.
// Markdown outer pipes and --- separator rows are tolerated.
func Parse(text string) (Table, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Table{}, ErrEmptyText
	}

	var lines [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, columnSeparator) {
			continue
		}
		cells := splitCells(line)
		if isSeparatorRow(cells) {
			continue
		}
		lines = append(lines, cells)
	}
	if len(lines) == 0 {
		return Table{}, ErrNoTable
	}

	t := Table{Headers: lines[0], Rows: lines[1:]}
	if t.Rows == nil {
		t.Rows = [][]string{}
	}
	return t, nil
}

func splitCells(line string) []string {
	if strings.HasPrefix(line, columnSeparator) && strings.HasSuffix(line, columnSeparator) && len(line) > 1 {
		line = line[1 : len(line)-1]
	}
	parts := strings.Split(line, columnSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, separatorRowMarker+": ") != "" || !strings.Contains(c, separatorRowMarker) {
			return false
		}
	}
	return true
}

// PlainText renders the table in its stored form: pipe-joined headers, a
// newline, then pipe-joined rows one per line.
func (t Table) PlainText() string {
	rows := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = strings.Join(r, columnSeparator)
	}
	return strings.Join(t.Headers, columnSeparator) + "\n" + strings.Join(rows, "\n")
}
