package host

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Host{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedHosts inserts test data into the database.
func seedHosts(t *testing.T, db *gorm.DB, hosts []models.Host) {
	t.Helper()
	for _, h := range hosts {
		err := db.Create(&h).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name          string
		useNilDB      bool
		hostName      string
		seedData      []models.Host
		expectedError error
	}{
		{
			name:          "nil database",
			useNilDB:      true,
			hostName:      "edge1",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			hostName:      "",
			expectedError: ErrHostNameEmpty,
		},
		{
			name:          "host not found",
			hostName:      "nonexistent",
			expectedError: ErrHostNotFound,
		},
		{
			name:     "successful get",
			hostName: "edge1",
			seedData: []models.Host{
				{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.useNilDB {
				db = setupTestDB(t)
				seedHosts(t, db, tc.seedData)
			}

			host, err := Get(db, tc.hostName)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.hostName, host.Name)
			assert.Equal(t, "10.0.0.1/32", host.IPv4Address)
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)
	seedHosts(t, db, []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "a"},
		{Name: "edge2", IPv4Address: "10.0.0.2/32", SecretKey: "b"},
		{Name: "core1", IPv4Address: "10.0.1.1/32", SecretKey: "c"},
	})

	hosts, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, hosts, 3)

	// insertion order, not name order
	assert.Equal(t, "edge1", hosts[0].Name)
	assert.Equal(t, "edge2", hosts[1].Name)
	assert.Equal(t, "core1", hosts[2].Name)
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		host          models.Host
		seedData      []models.Host
		expectedError error
	}{
		{
			name:          "empty name",
			host:          models.Host{},
			expectedError: ErrHostNameEmpty,
		},
		{
			name: "duplicate name",
			host: models.Host{Name: "edge1", IPv4Address: "10.0.0.9/32", SecretKey: "x"},
			seedData: []models.Host{
				{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
			},
			expectedError: ErrHostAlreadyExists,
		},
		{
			name: "successful create",
			host: models.Host{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			seedHosts(t, db, tc.seedData)

			created, err := Create(db, &tc.host)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)

			stored, err := Get(db, tc.host.Name)
			require.NoError(t, err)
			assert.Equal(t, tc.host.SecretKey, stored.SecretKey)
		})
	}
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)
	seedHosts(t, db, []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
	})

	existing, err := Get(db, "edge1")
	require.NoError(t, err)

	updated, err := Update(db, existing.ID, &models.Host{
		Name:        "edge1",
		IPv4Address: "10.0.0.1/32",
		SecretKey:   "rotated",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "rotated", updated.SecretKey)

	_, err = Update(db, 999, &models.Host{Name: "ghost"})
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	seedHosts(t, db, []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
	})

	existing, err := Get(db, "edge1")
	require.NoError(t, err)

	require.NoError(t, Delete(db, existing.ID))

	_, err = Get(db, "edge1")
	assert.ErrorIs(t, err, ErrHostNotFound)

	assert.ErrorIs(t, Delete(db, existing.ID), ErrHostNotFound)
	assert.ErrorIs(t, Delete(nil, existing.ID), ErrDBNil)
}
