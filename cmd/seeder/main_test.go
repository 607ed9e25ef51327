package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucas-rech/desafio-prothera/internal/repository"
	"github.com/lucas-rech/desafio-prothera/internal/seed"
)

func TestRun_WritesToStdout(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(5, 1, "", &stdout))

	repo := repository.NewEmployeeRepository()
	n, err := seed.Load(context.Background(), repo, &stdout)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRun_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	var stdout bytes.Buffer
	require.NoError(t, run(3, 1, path, &stdout))
	assert.Zero(t, stdout.Len())

	repo := repository.NewEmployeeRepository()
	n, err := seed.LoadFile(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRun_BadOutputPath(t *testing.T) {
	err := run(3, 1, filepath.Join(t.TempDir(), "missing", "roster.yaml"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output file")
}
