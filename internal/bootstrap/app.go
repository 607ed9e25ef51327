package bootstrap

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lucas-rech/desafio-prothera/internal/config"
	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/logger"
	"github.com/lucas-rech/desafio-prothera/internal/report"
	"github.com/lucas-rech/desafio-prothera/internal/repository"
	"github.com/lucas-rech/desafio-prothera/internal/seed"
	"github.com/lucas-rech/desafio-prothera/internal/service"
)

type App struct {
	Repo     domain.EmployeeRepository
	Service  *service.EmployeeService
	Exporter *report.PayrollExporter
}

func NewApp() *App {
	return &App{}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	wage, err := decimal.NewFromString(cfg.MINIMUM_WAGE)
	if err != nil {
		return fmt.Errorf("invalid MINIMUM_WAGE %q: %w", cfg.MINIMUM_WAGE, err)
	}

	a.Repo = repository.NewEmployeeRepository()
	if err := a.seed(ctx, cfg.SEED_FILE); err != nil {
		return err
	}

	a.Service = service.NewEmployeeService(a.Repo, service.WithMinimumWage(wage))
	a.Exporter = report.NewPayrollExporter(a.Service)
	return nil
}

func (a *App) seed(ctx context.Context, path string) error {
	var (
		n   int
		err error
	)
	if path != "" {
		n, err = seed.LoadFile(ctx, a.Repo, path)
	} else {
		n, err = seed.LoadDefault(ctx, a.Repo)
	}
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}
	logger.InfoLog(ctx, "Seeded %d employees", n)
	return nil
}
