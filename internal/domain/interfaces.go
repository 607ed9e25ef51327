package domain

import "context"

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	Add(ctx context.Context, e *Employee) error
	List(ctx context.Context) []Employee
	Count(ctx context.Context) int

	// Mutations
	RemoveByName(ctx context.Context, name string) int
	RemoveByID(ctx context.Context, id string) bool
	RaiseAllSalaries(ctx context.Context, percent float64) int
}
