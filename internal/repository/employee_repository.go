package repository

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// salaryPlaces is the number of fractional digits kept after a raise.
const salaryPlaces = 2

type employeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

// NewEmployeeRepository creates an in-memory EmployeeRepository.
// Seed employees are added in order; IDs are assigned where missing.
func NewEmployeeRepository(seed ...domain.Employee) domain.EmployeeRepository {
	r := &employeeRepository{}
	for i := range seed {
		e := seed[i]
		// seed data is trusted, a duplicate ID is a programming error
		if err := r.Add(context.Background(), &e); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *employeeRepository) Add(ctx context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	} else {
		for _, existing := range r.employees {
			if existing.ID == e.ID {
				return fmt.Errorf("add employee %q: %w", e.ID, domain.ErrDuplicateID)
			}
		}
	}
	e.BirthDate = domain.DateOf(e.BirthDate)

	r.employees = append(r.employees, *e)
	return nil
}

// List returns a copy of the employees in insertion order.
func (r *employeeRepository) List(ctx context.Context) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *employeeRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees)
}

// RemoveByName removes every employee whose name matches exactly and
// returns how many were removed.
func (r *employeeRepository) RemoveByName(ctx context.Context, name string) int {
	return r.removeWhere(func(e domain.Employee) bool { return e.Name == name })
}

func (r *employeeRepository) RemoveByID(ctx context.Context, id string) bool {
	return r.removeWhere(func(e domain.Employee) bool { return e.ID == id }) > 0
}

func (r *employeeRepository) removeWhere(match func(domain.Employee) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.employees[:0]
	removed := 0
	for _, e := range r.employees {
		if match(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// clear the tail so removed records are not retained by the backing array
	for i := len(kept); i < len(r.employees); i++ {
		r.employees[i] = domain.Employee{}
	}
	r.employees = kept
	return removed
}

// RaiseAllSalaries multiplies every salary by (1 + percent/100), rounding
// half up to two decimal places. It returns the number of employees updated.
// A NaN or infinite percent changes nothing and returns 0.
func (r *employeeRepository) RaiseAllSalaries(ctx context.Context, percent float64) int {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}
	factor := hundred.Add(decimal.NewFromFloat(percent))

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		raised := r.employees[i].Salary.Mul(factor).Shift(-2)
		r.employees[i].Salary = raised.Round(salaryPlaces)
	}
	return len(r.employees)
}
