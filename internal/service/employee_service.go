package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/logger"
)

// EmployeeService answers queries and aggregations over the store's snapshot
type EmployeeService struct {
	repo domain.EmployeeRepository
	cfg  *config
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo domain.EmployeeRepository, opts ...Option) *EmployeeService {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	return &EmployeeService{repo: repo, cfg: cfg}
}

// MinimumWage returns the unit used by MinimumWageMultiples.
func (s *EmployeeService) MinimumWage() decimal.Decimal {
	return s.cfg.minimumWage
}

// ==================== Mutations ====================

// DeleteByName removes every employee named name and returns how many were removed.
func (s *EmployeeService) DeleteByName(ctx context.Context, name string) int {
	removed := s.repo.RemoveByName(ctx, name)
	logger.InfoLog(ctx, "Deleted %d employee(s) with name %s", removed, name)
	return removed
}

// RaiseSalaries raises every salary by percent and returns how many were updated.
func (s *EmployeeService) RaiseSalaries(ctx context.Context, percent float64) int {
	updated := s.repo.RaiseAllSalaries(ctx, percent)
	logger.InfoLog(ctx, "Salary increased by %.2f%% for %d employees", percent, updated)
	return updated
}

// ==================== Queries ====================

// GetAll returns a snapshot of every employee in insertion order.
func (s *EmployeeService) GetAll(ctx context.Context) []domain.Employee {
	return s.repo.List(ctx)
}

// GroupByRole groups employees by exact role. Each group keeps input order.
func (s *EmployeeService) GroupByRole(employees []domain.Employee) map[string][]domain.Employee {
	groups := make(map[string][]domain.Employee)
	for _, e := range employees {
		groups[e.Role] = append(groups[e.Role], e)
	}
	return groups
}

// RolesInOrder returns the distinct roles in order of first appearance.
func (s *EmployeeService) RolesInOrder(employees []domain.Employee) []string {
	seen := make(map[string]struct{})
	var roles []string
	for _, e := range employees {
		if _, ok := seen[e.Role]; ok {
			continue
		}
		seen[e.Role] = struct{}{}
		roles = append(roles, e.Role)
	}
	return roles
}

// FilterByBirthDateRange returns employees born within [start, end], both
// given as dd/MM/yyyy.
func (s *EmployeeService) FilterByBirthDateRange(ctx context.Context, start, end string) ([]domain.Employee, error) {
	from, err := domain.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("parse range start: %w", err)
	}
	to, err := domain.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("parse range end: %w", err)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", domain.ErrInvalidRange, start, end)
	}

	var out []domain.Employee
	for _, e := range s.repo.List(ctx) {
		if !e.BirthDate.Before(from) && !e.BirthDate.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// BirthdaysInMonths returns employees whose birthday falls in any of months.
func (s *EmployeeService) BirthdaysInMonths(ctx context.Context, months ...time.Month) []domain.Employee {
	var out []domain.Employee
	for _, e := range s.repo.List(ctx) {
		if slices.Contains(months, e.BirthDate.Month()) {
			out = append(out, e)
		}
	}
	return out
}

// SeniorEmployee returns the employee with the earliest birth date. Ties go
// to the first one in store order. The bool is false on an empty store.
func (s *EmployeeService) SeniorEmployee(ctx context.Context) (domain.Employee, bool) {
	employees := s.repo.List(ctx)
	if len(employees) == 0 {
		return domain.Employee{}, false
	}

	senior := employees[0]
	for _, e := range employees[1:] {
		if e.BirthDate.Before(senior.BirthDate) {
			senior = e
		}
	}
	return senior, true
}

// SeniorAge returns the senior employee's age in whole years.
func (s *EmployeeService) SeniorAge(ctx context.Context) (int, error) {
	senior, ok := s.SeniorEmployee(ctx)
	if !ok {
		return 0, fmt.Errorf("senior employee: %w", domain.ErrNotFound)
	}
	return domain.YearsBetween(senior.BirthDate, domain.DateOf(s.cfg.now())), nil
}

// SortedByName returns the employees ordered by name, byte-wise ascending.
func (s *EmployeeService) SortedByName(ctx context.Context) []domain.Employee {
	employees := s.repo.List(ctx)
	slices.SortStableFunc(employees, func(a, b domain.Employee) int {
		return strings.Compare(a.Name, b.Name)
	})
	return employees
}

// ==================== Aggregations ====================

// MinimumWageMultiples returns, per employee and in store order, how many
// minimum wages the salary amounts to, rounded up.
func (s *EmployeeService) MinimumWageMultiples(ctx context.Context) []domain.MinimumWageEntry {
	employees := s.repo.List(ctx)
	out := make([]domain.MinimumWageEntry, 0, len(employees))
	for _, e := range employees {
		out = append(out, domain.MinimumWageEntry{
			Employee: e,
			Units:    s.minimumWageUnits(e.Salary),
		})
	}
	return out
}

// MinimumWagesByName is the name-keyed view of MinimumWageMultiples. When
// names collide the later employee wins, so callers must guarantee unique names.
func (s *EmployeeService) MinimumWagesByName(ctx context.Context) map[string]int64 {
	entries := s.MinimumWageMultiples(ctx)
	out := make(map[string]int64, len(entries))
	for _, entry := range entries {
		out[entry.Employee.Name] = entry.Units
	}
	return out
}

func (s *EmployeeService) minimumWageUnits(salary decimal.Decimal) int64 {
	q, r := salary.QuoRem(s.cfg.minimumWage, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q.IntPart()
}

// TotalSalary returns the exact sum of all salaries.
func (s *EmployeeService) TotalSalary(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.repo.List(ctx) {
		total = total.Add(e.Salary)
	}
	return total
}

// TotalSalaryByRole returns the payroll subtotal of each role.
func (s *EmployeeService) TotalSalaryByRole(ctx context.Context) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range s.repo.List(ctx) {
		totals[e.Role] = totals[e.Role].Add(e.Salary)
	}
	return totals
}
