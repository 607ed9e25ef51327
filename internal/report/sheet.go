package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// numFmtMoney is the built-in "#,##0.00" number format.
	numFmtMoney = 4
	moneyPlaces = 2
)

// Section is a titled block of rows rendered top to bottom in a sheet.
type Section struct {
	Title   string
	Columns []Column
	Rows    [][]interface{}
	// Footer is rendered bold after the data rows when non-empty.
	Footer []interface{}
}

// Column describes one column of a section.
type Column struct {
	Header string
	Width  float64
	Money  bool
}

type styles struct {
	title  int
	header int
	money  int
	footer int
	// footerMoney is the footer style for money columns
	footerMoney int
}

func newStyles(f *excelize.File) (*styles, error) {
	var (
		s   styles
		err error
	)
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}}); err != nil {
		return nil, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	}); err != nil {
		return nil, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return nil, err
	}
	if s.footer, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, err
	}
	if s.footerMoney, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtMoney}); err != nil {
		return nil, err
	}
	return &s, nil
}

// renderSections writes sections one under the other, leaving a blank row
// between them.
func renderSections(f *excelize.File, st *styles, sheet string, sections []Section) error {
	row := 1
	for _, sec := range sections {
		if sec.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, st.title); err != nil {
				return err
			}
			row++
		}

		for i, col := range sec.Columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, st.header); err != nil {
				return err
			}
			if col.Width > 0 {
				name, _ := excelize.ColumnNumberToName(i + 1)
				if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
					return err
				}
			}
		}
		row++

		for _, values := range sec.Rows {
			if err := writeRow(f, sheet, row, sec.Columns, values, st.money, 0); err != nil {
				return err
			}
			row++
		}

		if len(sec.Footer) > 0 {
			if err := writeRow(f, sheet, row, sec.Columns, sec.Footer, st.footerMoney, st.footer); err != nil {
				return err
			}
			row++
		}

		row++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cols []Column, values []interface{}, moneyStyle, plainStyle int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := setCell(f, sheet, cell, v); err != nil {
			return fmt.Errorf("error writing %s!%s: %w", sheet, cell, err)
		}

		style := plainStyle
		if i < len(cols) && cols[i].Money {
			style = moneyStyle
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

// setCell writes decimals as numeric cells from their exact two-place text,
// so no amount goes through float64.
func setCell(f *excelize.File, sheet, cell string, v interface{}) error {
	if d, ok := v.(decimal.Decimal); ok {
		return f.SetCellDefault(sheet, cell, d.StringFixed(moneyPlaces))
	}
	return f.SetCellValue(sheet, cell, v)
}
