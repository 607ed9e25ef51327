package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/logger"
)

//go:embed roster.yaml
var defaultRoster string

// Roster is the YAML document accepted by Load.
type Roster struct {
	Employees []EmployeeRecord `yaml:"employees"`
}

// EmployeeRecord is one roster entry. Dates use dd/MM/yyyy and salaries are
// decimal strings so no precision is lost in YAML float parsing.
type EmployeeRecord struct {
	ID        string `yaml:"id,omitempty"`
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	BirthDate string `yaml:"birth_date"`
	Salary    string `yaml:"salary"`
}

// ToEmployee converts the record into a domain employee.
func (r EmployeeRecord) ToEmployee() (domain.Employee, error) {
	birth, err := domain.ParseDate(r.BirthDate)
	if err != nil {
		return domain.Employee{}, err
	}
	salary, err := decimal.NewFromString(r.Salary)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("invalid salary %q: %w", r.Salary, err)
	}
	return domain.Employee{
		ID:        r.ID,
		Name:      r.Name,
		Role:      r.Role,
		BirthDate: birth,
		Salary:    salary,
	}, nil
}

// Load decodes a roster from r and adds every employee to repo in document
// order. It returns the number of employees added. Every entry is validated
// before the first one is added.
func Load(ctx context.Context, repo domain.EmployeeRepository, r io.Reader) (int, error) {
	var roster Roster
	// an empty document is an empty roster
	if err := yaml.NewDecoder(r).Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decode roster: %w", err)
	}

	ids := make(map[string]struct{})
	for _, e := range repo.List(ctx) {
		ids[e.ID] = struct{}{}
	}

	employees := make([]domain.Employee, 0, len(roster.Employees))
	for i, rec := range roster.Employees {
		e, err := rec.ToEmployee()
		if err != nil {
			return 0, fmt.Errorf("roster entry %d (%s): %w", i, rec.Name, err)
		}
		if e.ID != "" {
			if _, ok := ids[e.ID]; ok {
				return 0, fmt.Errorf("roster entry %d (%s): id %q: %w", i, rec.Name, e.ID, domain.ErrDuplicateID)
			}
			ids[e.ID] = struct{}{}
		}
		employees = append(employees, e)
	}

	for i := range employees {
		if err := repo.Add(ctx, &employees[i]); err != nil {
			return i, fmt.Errorf("roster entry %d (%s): %w", i, employees[i].Name, err)
		}
	}

	logger.DebugLog(ctx, "Seeded %d employees", len(employees))
	return len(employees), nil
}

// LoadFile loads the roster stored at path.
func LoadFile(ctx context.Context, repo domain.EmployeeRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	return Load(ctx, repo, f)
}

// LoadDefault loads the built-in roster.
func LoadDefault(ctx context.Context, repo domain.EmployeeRepository) (int, error) {
	return Load(ctx, repo, strings.NewReader(defaultRoster))
}
