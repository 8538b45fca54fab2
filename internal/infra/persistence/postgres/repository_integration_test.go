//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"orgs/internal/domain/entity"
	"orgs/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ptr(id int64) *int64 {
	return &id
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("orgs"),
		postgrescontainer.WithUsername("orgs"),
		postgrescontainer.WithPassword("orgs"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)

	schema, err := os.ReadFile("../../../../db/migrations/0001_init.up.sql")
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(schema)).Error)

	seed(t, db)

	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := NewTransactionManager(db).Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		writer := factory.NewFixtureWriter()
		ctx := context.Background()

		if err := writer.InsertBuildings(ctx, []*entity.Building{
			{ID: 1, Address: "Lenina 1", Latitude: 55.7558, Longitude: 37.6173},
			{ID: 2, Address: "Tverskaya 7", Latitude: 55.7601, Longitude: 37.6186},
			{ID: 3, Address: "Bluchera 32/1", Latitude: 55.0084, Longitude: 82.9357},
		}); err != nil {
			return err
		}

		if err := writer.InsertActivities(ctx, []*entity.Activity{
			{ID: 1, Name: "Food"},
			{ID: 2, Name: "Meat", ParentID: ptr(1)},
			{ID: 3, Name: "Dairy", ParentID: ptr(1)},
		}); err != nil {
			return err
		}

		return writer.InsertOrganizations(ctx, []*entity.Organization{
			{ID: 1, Name: "Horns and Hooves", BuildingID: 1, Phones: []string{"2-222-222", "3-333-333"},
				Activities: []*entity.Activity{{ID: 2}, {ID: 3}}},
			{ID: 2, Name: "Milk 100%", BuildingID: 2, Activities: []*entity.Activity{{ID: 3}}},
			{ID: 3, Name: "Siberia Auto", BuildingID: 3},
		})
	})
	require.NoError(t, err)
}

func TestOrganizationRepository_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	t.Run("find by id loads associations", func(t *testing.T) {
		organization, err := repo.FindOrganizationByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Horns and Hooves", organization.Name)
		assert.Equal(t, []string{"2-222-222", "3-333-333"}, organization.Phones)
		require.NotNil(t, organization.Building)
		assert.Equal(t, "Lenina 1", organization.Building.Address)
		assert.Equal(t, []string{"Meat", "Dairy"}, organization.ActivityNames())
	})

	t.Run("find missing", func(t *testing.T) {
		_, err := repo.FindOrganizationByID(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrOrganizationNotFound)
	})

	t.Run("name is case insensitive and literal", func(t *testing.T) {
		organizations, total, err := repo.SearchOrganizations(ctx, repository.OrganizationQuery{NameContains: "HORNS"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, organizations, 1)

		organizations, _, err = repo.SearchOrganizations(ctx, repository.OrganizationQuery{NameContains: "100%"})
		require.NoError(t, err)
		require.Len(t, organizations, 1)
		assert.EqualValues(t, 2, organizations[0].ID)
	})

	t.Run("activities are distinct", func(t *testing.T) {
		organizations, total, err := repo.SearchOrganizations(ctx, repository.OrganizationQuery{ActivityIDs: []int64{1, 2, 3}})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, organizations, 2)
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		organizations, total, err := repo.SearchOrganizations(ctx, repository.OrganizationQuery{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, organizations, 1)
		assert.EqualValues(t, 2, organizations[0].ID)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithTimeout(ctx, time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		_, _, err := repo.SearchOrganizations(cancelled, repository.OrganizationQuery{})
		assert.Error(t, err)
	})
}

func TestBuildingRepository_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewBuildingRepository(db)
	ctx := context.Background()

	buildings, err := repo.FindBuildingsInBound(ctx, orb.Bound{
		Min: orb.Point{37.6173, 55.7558},
		Max: orb.Point{37.6186, 55.7601},
	})
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.EqualValues(t, 1, buildings[0].ID)

	_, err = repo.FindBuildingByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrBuildingNotFound)
}

func TestActivityRepository_Integration(t *testing.T) {
	db := setupDB(t)
	repo := NewActivityRepository(db)

	activities, err := repo.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Nil(t, activities[0].ParentID)
	assert.EqualValues(t, 1, *activities[1].ParentID)
}
