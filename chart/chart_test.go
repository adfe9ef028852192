package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnn/m"
)

var points = []m.CostPoint{
	{Iteration: 0, Cost: 0.71},
	{Iteration: 100, Cost: 0.52},
	{Iteration: 200, Cost: 0.40},
}

func TestFilePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cost.png")
	require.NoError(t, File{Path: path}.Plot(points))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFilePlotEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cost.png")
	require.Error(t, File{Path: path}.Plot(nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFilePlotUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cost.unknown")
	assert.Error(t, File{Path: path}.Plot(points))
}

func TestMulti(t *testing.T) {
	a, b := &Series{}, &Series{}
	require.NoError(t, Multi{a, b}.Plot(points))
	assert.Equal(t, points, a.Points)
	assert.Equal(t, points, b.Points)

	path := filepath.Join(t.TempDir(), "missing", "cost.png")
	c := &Series{}
	require.Error(t, Multi{File{Path: path}, c}.Plot(points))
	assert.Empty(t, c.Points)
}
