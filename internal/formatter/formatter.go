// package formatter renders kost data to tabular formats (CSV, Markdown,
// plain text, xlsx) and provides the small display helpers the CLI and TUI
// share.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/binarakost/kostctl/internal/models"
)

// Table is a rendered dataset: one resource listing flattened to rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RoomsTable flattens rooms. Facilities collapse to a comma-joined name list.
func RoomsTable(rooms []models.Room) Table {
	t := Table{
		Title:   "Rooms",
		Headers: []string{"ID", "Code", "Monthly Price", "Deposit", "Electricity", "Size (m2)", "Available", "Facilities", "Notes"},
	}
	for _, room := range rooms {
		electricity := "excluded"
		if room.ElectricityIncluded.Bool() {
			electricity = "included"
		}
		if room.ElectricityNote != "" {
			electricity += " (" + room.ElectricityNote + ")"
		}
		names := make([]string, len(room.Facilities))
		for i, f := range room.Facilities {
			names[i] = f.Name
		}
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(room.ID, 10),
			room.Code,
			Money(room.PriceMonthly),
			Money(room.Deposit),
			electricity,
			floatCell(room.SizeM2),
			yesNo(room.IsAvailable.Bool()),
			strings.Join(names, ", "),
			room.Notes,
		})
	}
	return t
}

// NearbyTable flattens nearby places.
func NearbyTable(places []models.Nearby) Table {
	t := Table{
		Title:   "Nearby Places",
		Headers: []string{"ID", "Category", "Name", "Address", "Distance", "Maps URL", "Note"},
	}
	for _, place := range places {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(place.ID, 10),
			string(place.Category),
			place.Name,
			place.Address,
			Distance(place.DistanceM),
			place.MapsURL,
			place.Note,
		})
	}
	return t
}

// RulesTable flattens house rules.
func RulesTable(rules []models.Rule) Table {
	t := Table{Title: "House Rules", Headers: []string{"ID", "Title", "Description"}}
	for _, rule := range rules {
		t.Rows = append(t.Rows, []string{strconv.FormatInt(rule.ID, 10), rule.Title, rule.Description})
	}
	return t
}

// FacilitiesTable flattens the facility catalog.
func FacilitiesTable(facilities []models.Facility) Table {
	t := Table{Title: "Facilities", Headers: []string{"ID", "Name"}}
	for _, facility := range facilities {
		t.Rows = append(t.Rows, []string{strconv.FormatInt(facility.ID, 10), facility.Name})
	}
	return t
}

// CSV renders the table as CSV with a header row.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// Markdown renders the table as a GitHub-style pipe table under a heading.
func (t Table) Markdown() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", t.Title))
	buf.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	separators := make([]string, len(t.Headers))
	for i := range separators {
		separators[i] = "---"
	}
	buf.WriteString("| " + strings.Join(separators, " | ") + " |\n")
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return buf.Bytes()
}

// Text renders the table as numbered plain-text lines.
func (t Table) Text() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s (%d)\n\n", t.Title, len(t.Rows)))
	for i, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for j, cell := range row {
			if cell == "" {
				continue
			}
			cells = append(cells, t.Headers[j]+": "+cell)
		}
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.Join(cells, " | ")))
	}

	return buf.Bytes()
}

// WriteXLSX writes the table as a one-sheet workbook.
func (t Table) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Title
	if sheet == "" {
		sheet = "Sheet1"
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for rowIdx, row := range t.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile renders the table in the named format (csv, markdown, txt, xlsx)
// and writes it to path.
func (t Table) WriteFile(format, path string) error {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = t.CSV()
	case "markdown", "md":
		data = t.Markdown()
	case "txt", "text":
		data = t.Text()
	case "xlsx":
		return t.WriteXLSX(path)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Ext returns the file extension for a format name.
func Ext(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "txt", "text":
		return "txt"
	case "xlsx":
		return "xlsx"
	default:
		return "csv"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Money formats rupiah with dot thousand separators, e.g. "Rp 850.000".
// A nil amount renders empty.
func Money(v *int64) string {
	if v == nil {
		return ""
	}
	n := *v
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "Rp " + strings.Join(groups, ".")
}

// Distance renders meters, switching to kilometers from 1000 m up.
func Distance(v *int64) string {
	if v == nil {
		return ""
	}
	if *v < 1000 {
		return fmt.Sprintf("%d m", *v)
	}
	return strconv.FormatFloat(float64(*v)/1000, 'f', -1, 64) + " km"
}

// WALink builds a wa.me link from an Indonesian phone number and an optional
// prefilled message. Leading zeros become the 62 country prefix; non-digits
// are stripped.
func WALink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if number == "" {
		return ""
	}
	if strings.HasPrefix(number, "0") {
		number = "62" + number[1:]
	}

	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
