package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a single employee record held by the store
type Employee struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	BirthDate time.Time       `json:"birth_date"`
	Salary    decimal.Decimal `json:"salary"`
}

// FormattedBirthDate returns the birth date in the dd/MM/yyyy layout.
func (e Employee) FormattedBirthDate() string {
	return FormatDate(e.BirthDate)
}

// MinimumWageEntry is one row of the minimum wage report.
// Units is the salary expressed in minimum wages, rounded up.
type MinimumWageEntry struct {
	Employee Employee `json:"employee"`
	Units    int64    `json:"units"`
}
