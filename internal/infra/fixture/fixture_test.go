package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"orgs/internal/infra/hierarchy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
buildings:
  - {id: 1, address: "Lenina 1", latitude: 55.7558, longitude: 37.6173}
  - {id: 2, address: "Bluchera 32/1", latitude: 55.0084, longitude: 82.9357}
activities:
  - {id: 3, name: Dairy, parentId: 1}
  - {id: 1, name: Food}
  - {id: 2, name: Meat, parentId: 1}
organizations:
  - id: 1
    name: Horns and Hooves
    buildingId: 1
    phones: ["2-222-222", "3-333-333"]
    activityIds: [2, 3]
  - {id: 2, name: Siberia Auto, buildingId: 2}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	buildings, activities, organizations := f.Entities()
	assert.Len(t, buildings, 2)

	// Parents come before children.
	require.Len(t, activities, 3)
	assert.EqualValues(t, 1, activities[0].ID)

	require.Len(t, organizations, 2)
	assert.Equal(t, "Lenina 1", organizations[0].Building.Address)
	assert.Equal(t, []string{"2-222-222", "3-333-333"}, organizations[0].Phones)
	assert.Equal(t, []string{"Meat", "Dairy"}, organizations[0].ActivityNames())
	assert.Empty(t, organizations[1].Activities)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("buildings: [oops"))
	assert.Error(t, err)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	f, err := Parse([]byte(`
buildings:
  - {id: 1, address: A, latitude: 95, longitude: 0}
  - {id: 1, address: B, latitude: 0, longitude: 0}
activities:
  - {id: 1, name: Root}
  - {id: 2, name: L2, parentId: 1}
  - {id: 3, name: L3, parentId: 2}
  - {id: 4, name: L4, parentId: 3}
  - {id: 5, name: "", parentId: 6}
  - {id: 6, name: Loop, parentId: 5}
organizations:
  - {id: 1, name: "", buildingId: 9, activityIds: [42]}
`))
	require.NoError(t, err)

	err = f.Validate()

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrBadCoordinate)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, err, ErrUnknownBuilding)
	assert.ErrorIs(t, err, ErrUnknownActivity)
	assert.ErrorIs(t, err, hierarchy.ErrTooDeep)
	assert.ErrorIs(t, err, hierarchy.ErrCycle)
}
