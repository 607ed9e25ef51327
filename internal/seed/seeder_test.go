package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
	"github.com/lucas-rech/desafio-prothera/internal/repository"
)

func TestLoadDefault(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepository()

	n, err := LoadDefault(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	employees := repo.List(ctx)
	require.Len(t, employees, 10)

	first := employees[0]
	assert.Equal(t, "Maria", first.Name)
	assert.Equal(t, "Operador", first.Role)
	assert.Equal(t, time.Date(2000, time.October, 18, 0, 0, 0, 0, time.UTC), first.BirthDate)
	assert.Equal(t, "2009.44", first.Salary.StringFixed(2))
	assert.NotEmpty(t, first.ID)

	assert.Equal(t, "Heloísa", employees[8].Name)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	testCases := map[string]struct {
		doc     string
		want    int
		wantErr error
	}{
		"valid with explicit id": {
			doc: `
employees:
  - id: emp-1
    name: Alice
    role: Eng
    birth_date: 01/01/1990
    salary: "5000.00"
`,
			want: 1,
		},
		"empty roster": {
			doc:  "employees: []\n",
			want: 0,
		},
		"bad date": {
			doc: `
employees:
  - name: Alice
    role: Eng
    birth_date: "1990-01-01"
    salary: "5000.00"
`,
			wantErr: domain.ErrDateFormat,
		},
		"duplicate id": {
			doc: `
employees:
  - id: emp-1
    name: Alice
    role: Eng
    birth_date: 01/01/1990
    salary: "5000.00"
  - id: emp-1
    name: Bob
    role: Eng
    birth_date: 15/06/1985
    salary: "3000.00"
`,
			wantErr: domain.ErrDuplicateID,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo := repository.NewEmployeeRepository()
			n, err := Load(ctx, repo, strings.NewReader(tc.doc))
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
			assert.Equal(t, tc.want, repo.Count(ctx))
		})
	}
}

func TestLoad_InvalidEntryAddsNothing(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepository()

	doc := `
employees:
  - name: Alice
    role: Eng
    birth_date: 01/01/1990
    salary: "5000.00"
  - name: Bob
    role: Eng
    birth_date: 15/06/1985
    salary: "three thousand"
`
	_, err := Load(ctx, repo, strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster entry 1 (Bob)")
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestLoad_DuplicateIDAddsNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated within the roster", func(t *testing.T) {
		repo := repository.NewEmployeeRepository()
		doc := `
employees:
  - id: x1
    name: Alice
    role: Eng
    birth_date: 01/01/1990
    salary: "5000.00"
  - id: x1
    name: Bob
    role: Eng
    birth_date: 15/06/1985
    salary: "3000.00"
`
		n, err := Load(ctx, repo, strings.NewReader(doc))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateID))
		assert.Contains(t, err.Error(), "roster entry 1 (Bob)")
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, repo.Count(ctx))
	})

	t.Run("already in the store", func(t *testing.T) {
		repo := repository.NewEmployeeRepository(domain.Employee{ID: "x1", Name: "Carol", Role: "HR"})
		doc := `
employees:
  - name: Alice
    role: Eng
    birth_date: 01/01/1990
    salary: "5000.00"
  - id: x1
    name: Bob
    role: Eng
    birth_date: 15/06/1985
    salary: "3000.00"
`
		_, err := Load(ctx, repo, strings.NewReader(doc))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateID))
		assert.Equal(t, []string{"Carol"}, []string{repo.List(ctx)[0].Name})
		assert.Equal(t, 1, repo.Count(ctx))
	})
}

func TestLoad_EmptyDocument(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEmployeeRepository()

	n, err := Load(ctx, repo, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(context.Background(), repository.NewEmployeeRepository(), strings.NewReader("employees: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode roster")
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := "employees:\n  - name: Carol\n    role: HR\n    birth_date: 31/12/2000\n    salary: \"6000.00\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	repo := repository.NewEmployeeRepository()
	n, err := LoadFile(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Carol", repo.List(ctx)[0].Name)

	_, err = LoadFile(ctx, repo, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
