package seed

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucas-rech/desafio-prothera/internal/repository"
)

func TestGenerate_IsDeterministic(t *testing.T) {
	a := Generate(25, 42)
	b := Generate(25, 42)
	assert.Equal(t, a, b)
	assert.Len(t, a.Employees, 25)

	for _, rec := range a.Employees {
		_, err := rec.ToEmployee()
		require.NoError(t, err, "record %+v", rec)
	}
}

func TestGenerate_WriteThenLoad(t *testing.T) {
	ctx := context.Background()
	roster := Generate(PresetSize(PresetSmall), 7)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, roster))

	repo := repository.NewEmployeeRepository()
	n, err := Load(ctx, repo, &buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	loaded := repo.List(ctx)
	for i, rec := range roster.Employees {
		assert.Equal(t, rec.Name, loaded[i].Name)
		assert.Equal(t, rec.Salary, loaded[i].Salary.StringFixed(2))
		assert.Equal(t, rec.BirthDate, loaded[i].FormattedBirthDate())
	}
}

func TestPresetSize(t *testing.T) {
	assert.Equal(t, 10, PresetSize(PresetSmall))
	assert.Equal(t, 100, PresetSize(PresetMedium))
	assert.Equal(t, 1000, PresetSize(PresetLarge))
	assert.Equal(t, 100, PresetSize("unknown"))
}
