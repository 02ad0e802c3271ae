package hmm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePointsAndTriangles() ([]Vertex, []Triangle) {
	points := []Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
	triangles := []Triangle{
		{0, 1, 2},
		{0, 2, 3},
	}
	return points, triangles
}

func TestWriteSTLProducesNonEmptyFile(t *testing.T) {
	points, triangles := samplePointsAndTriangles()
	path := filepath.Join(t.TempDir(), "mesh.stl")

	require.NoError(t, WriteSTL(path, points, triangles))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteOBJContainsExpectedRecords(t *testing.T) {
	points, triangles := samplePointsAndTriangles()
	uvs := UVsFromXY(points, 1, 1)
	path := filepath.Join(t.TempDir(), "mesh.obj")

	require.NoError(t, WriteOBJ(path, points, triangles, uvs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var vCount, vtCount, fCount int
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		switch {
		case strings.HasPrefix(line, "vt "):
			vtCount++
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		}
	}

	assert.Equal(t, len(points), vCount)
	assert.Equal(t, len(uvs), vtCount)
	assert.Equal(t, len(triangles), fCount)
}
