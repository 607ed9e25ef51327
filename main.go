package main

import (
	"context"
	"strings"
	"time"

	"github.com/lucas-rech/desafio-prothera/internal/bootstrap"
	"github.com/lucas-rech/desafio-prothera/internal/config"
	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, err, "Failed to initialize application")
		panic(err)
	}
	svc := app.Service
	cfg := config.DefaultEnvConfig

	svc.DeleteByName(ctx, cfg.DELETE_NAME)
	logEmployees(ctx, "All employees", svc.GetAll(ctx))

	svc.RaiseSalaries(ctx, cfg.RAISE_PERCENT)

	employees := svc.GetAll(ctx)
	groups := svc.GroupByRole(employees)
	for _, role := range svc.RolesInOrder(employees) {
		logEmployees(logger.WithLogger(ctx, map[string]interface{}{"role": role}), "Employees by role", groups[role])
	}

	logEmployees(ctx, "Birthdays in October and December", svc.BirthdaysInMonths(ctx, time.October, time.December))

	if senior, ok := svc.SeniorEmployee(ctx); ok {
		if age, err := svc.SeniorAge(ctx); err != nil {
			logger.ErrorLog(ctx, err, "Failed to compute age of %s", senior.Name)
		} else {
			logger.InfoLog(ctx, "Senior employee: %s, %d years old", senior.Name, age)
		}
	} else {
		logger.WarnLog(ctx, "No employees registered")
	}

	logEmployees(ctx, "Employees in alphabetical order", svc.SortedByName(ctx))
	logger.InfoLog(ctx, "Total payroll: %s", svc.TotalSalary(ctx).StringFixed(2))

	for _, entry := range svc.MinimumWageMultiples(ctx) {
		logger.InfoLog(ctx, "%s earns %d minimum wage(s)", entry.Employee.Name, entry.Units)
	}

	if cfg.REPORT_PATH != "" {
		if err := app.Exporter.SaveAs(ctx, cfg.REPORT_PATH); err != nil {
			logger.ErrorLog(ctx, err, "Failed to export payroll workbook to %s", cfg.REPORT_PATH)
			panic(err)
		}
	}
}

func logEmployees(ctx context.Context, title string, employees []domain.Employee) {
	lines := make([]string, 0, len(employees))
	for _, e := range employees {
		lines = append(lines, strings.Join([]string{e.Name, e.Role, e.FormattedBirthDate(), e.Salary.StringFixed(2)}, " | "))
	}
	logger.InfoLog(ctx, "%s (%d):\n%s", title, len(employees), strings.Join(lines, "\n"))
}
