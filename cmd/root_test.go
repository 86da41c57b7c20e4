package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/projectfile"
)

func withFlags(t *testing.T, path string, sets ...string) {
	t.Helper()
	projectPath, setValues = path, sets
	t.Cleanup(func() { projectPath, setValues = "", nil })
}

func TestLoadProject_Default(t *testing.T) {
	withFlags(t, "")
	p, err := loadProject()
	require.NoError(t, err)
	assert.Equal(t, mill.Default(), p)
}

func TestLoadProject_AppliesSetsInOrder(t *testing.T) {
	withFlags(t, "", "stand.roughing-1.luz_proj=90", "stand.roughing-1.luz_proj=88")
	p, err := loadProject()
	require.NoError(t, err)

	s, _ := p.Stand("roughing-1")
	assert.Equal(t, 88.0, s.Derived.ExitHeight)
}

func TestLoadProject_BadSet(t *testing.T) {
	withFlags(t, "", "stand.roughing-1.luz")
	_, err := loadProject()
	assert.ErrorContains(t, err, "expected key=value")

	withFlags(t, "", "stand.nope.luz=3")
	_, err = loadProject()
	assert.ErrorIs(t, err, mill.ErrUnknownStand)
}

func TestSaveProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mill.yaml")
	withFlags(t, path)

	saved, err := saveProject("", mill.Default())
	require.NoError(t, err)
	assert.True(t, saved)

	p, err := projectfile.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Stands, 17)

	withFlags(t, "")
	saved, err = saveProject("", mill.Default())
	require.NoError(t, err)
	assert.False(t, saved)
}
