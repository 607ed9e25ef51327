package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/logger"
)

// Sheet names of the payroll workbook.
const (
	SheetEmployees    = "Employees"
	SheetByRole       = "By Role"
	SheetMinimumWages = "Minimum Wages"
)

// PayrollSource is the read side of the employee service used by the exporter.
type PayrollSource interface {
	GetAll(ctx context.Context) []domain.Employee
	SortedByName(ctx context.Context) []domain.Employee
	GroupByRole(employees []domain.Employee) map[string][]domain.Employee
	RolesInOrder(employees []domain.Employee) []string
	MinimumWageMultiples(ctx context.Context) []domain.MinimumWageEntry
	MinimumWage() decimal.Decimal
}

// PayrollExporter renders the current roster into an xlsx workbook.
type PayrollExporter struct {
	src PayrollSource
}

func NewPayrollExporter(src PayrollSource) *PayrollExporter {
	return &PayrollExporter{src: src}
}

var employeeColumns = []Column{
	{Header: "Name", Width: 20},
	{Header: "Role", Width: 18},
	{Header: "Birth Date", Width: 14},
	{Header: "Salary", Width: 14, Money: true},
}

func employeeRow(e domain.Employee) []interface{} {
	return []interface{}{e.Name, e.Role, e.FormattedBirthDate(), e.Salary}
}

func totalRow(label string, total decimal.Decimal) []interface{} {
	return []interface{}{label, "", "", total}
}

// BuildExcel creates the workbook in memory. The caller must close it.
func (p *PayrollExporter) BuildExcel(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create styles: %w", err)
	}

	sheets := []struct {
		name     string
		sections []Section
	}{
		{SheetEmployees, p.employeeSections(ctx)},
		{SheetByRole, p.roleSections(ctx)},
		{SheetMinimumWages, p.minimumWageSections(ctx)},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			f.Close()
			return nil, err
		}
		if err := renderSections(f, st, sh.name, sh.sections); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %s: %w", sh.name, err)
		}
	}

	logger.DebugLog(ctx, "Built payroll workbook with %d sheets", len(sheets))
	return f, nil
}

func (p *PayrollExporter) employeeSections(ctx context.Context) []Section {
	employees := p.src.SortedByName(ctx)
	total := decimal.Zero
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, employeeRow(e))
		total = total.Add(e.Salary)
	}
	return []Section{{
		Title:   "Employees",
		Columns: employeeColumns,
		Rows:    rows,
		Footer:  totalRow("Total", total),
	}}
}

func (p *PayrollExporter) roleSections(ctx context.Context) []Section {
	employees := p.src.GetAll(ctx)
	groups := p.src.GroupByRole(employees)

	var sections []Section
	for _, role := range p.src.RolesInOrder(employees) {
		members := groups[role]
		subtotal := decimal.Zero
		rows := make([][]interface{}, 0, len(members))
		for _, e := range members {
			rows = append(rows, employeeRow(e))
			subtotal = subtotal.Add(e.Salary)
		}
		sections = append(sections, Section{
			Title:   role,
			Columns: employeeColumns,
			Rows:    rows,
			Footer:  totalRow("Subtotal", subtotal),
		})
	}
	return sections
}

func (p *PayrollExporter) minimumWageSections(ctx context.Context) []Section {
	entries := p.src.MinimumWageMultiples(ctx)
	rows := make([][]interface{}, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []interface{}{
			entry.Employee.Name,
			entry.Employee.Role,
			entry.Employee.Salary,
			entry.Units,
		})
	}
	return []Section{{
		Title: "Minimum wage " + p.src.MinimumWage().StringFixed(2),
		Columns: []Column{
			{Header: "Name", Width: 20},
			{Header: "Role", Width: 18},
			{Header: "Salary", Width: 14, Money: true},
			{Header: "Minimum Wages", Width: 16},
		},
		Rows: rows,
	}}
}

// ToBytes exports the workbook to an in-memory byte slice.
func (p *PayrollExporter) ToBytes(ctx context.Context) ([]byte, error) {
	f, err := p.BuildExcel(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveAs writes the workbook to path.
func (p *PayrollExporter) SaveAs(ctx context.Context, path string) error {
	f, err := p.BuildExcel(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save payroll workbook: %w", err)
	}
	logger.InfoLog(ctx, "Payroll workbook written to %s", path)
	return nil
}
