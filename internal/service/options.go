package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinimumWage is the monetary unit used by MinimumWageMultiples.
var DefaultMinimumWage = decimal.RequireFromString("1212.00")

// Option configures an EmployeeService.
type Option func(*config)

type config struct {
	now         func() time.Time
	minimumWage decimal.Decimal
}

func defaultConfig() *config {
	return &config{
		now:         time.Now,
		minimumWage: DefaultMinimumWage,
	}
}

// WithClock sets the clock used to compute ages.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMinimumWage overrides the minimum wage unit. Non-positive values are ignored.
func WithMinimumWage(wage decimal.Decimal) Option {
	return func(c *config) {
		if wage.IsPositive() {
			c.minimumWage = wage
		}
	}
}
