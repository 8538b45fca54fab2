package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRunValidate_Passes(t *testing.T) {
	path := writeFixture(t, `
buildings:
  - {id: 1, address: "Lenina 1", latitude: 55.75, longitude: 37.61}
activities:
  - {id: 1, name: Food}
  - {id: 2, name: Meat, parentId: 1}
organizations:
  - {id: 1, name: Butcher, buildingId: 1, phones: ["2-222-222"], activityIds: [2]}
`)

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, path))
	assert.Contains(t, out.String(), "organizations: 1")
	assert.Contains(t, out.String(), "Validation passed")
}

func TestRunValidate_RejectsDeepTree(t *testing.T) {
	path := writeFixture(t, `
buildings: []
activities:
  - {id: 1, name: A}
  - {id: 2, name: B, parentId: 1}
  - {id: 3, name: C, parentId: 2}
  - {id: 4, name: D, parentId: 3}
organizations: []
`)

	err := runValidate(&bytes.Buffer{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity 4 is at level 4")
}

func TestRunValidate_MissingFile(t *testing.T) {
	err := runValidate(&bytes.Buffer{}, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
