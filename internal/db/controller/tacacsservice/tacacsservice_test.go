package tacacsservice

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

	err = db.AutoMigrate(&models.TacacsService{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedServices(t *testing.T, db *gorm.DB, services []models.TacacsService) {
	t.Helper()
	for _, s := range services {
		err := db.Create(&s).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name          string
		useNilDB      bool
		serviceName   string
		seedData      []models.TacacsService
		expectedError error
	}{
		{
			name:          "nil database",
			useNilDB:      true,
			serviceName:   "shell",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			serviceName:   "",
			expectedError: ErrServiceNameEmpty,
		},
		{
			name:          "service not found",
			serviceName:   "nonexistent",
			expectedError: ErrServiceNotFound,
		},
		{
			name:        "successful get",
			serviceName: "shell",
			seedData: []models.TacacsService{
				{Name: "shell", Description: "exec sessions"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.useNilDB {
				db = setupTestDB(t)
				seedServices(t, db, tc.seedData)
			}

			service, err := Get(db, tc.serviceName)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.serviceName, service.Name)
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)
	seedServices(t, db, []models.TacacsService{
		{Name: "shell"},
		{Name: "ppp"},
		{Name: "junos-exec"},
	})

	services, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, services, 3)

	// insertion order, not name order
	assert.Equal(t, "shell", services[0].Name)
	assert.Equal(t, "ppp", services[1].Name)
	assert.Equal(t, "junos-exec", services[2].Name)
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		service       models.TacacsService
		seedData      []models.TacacsService
		expectedError error
	}{
		{
			name:          "empty name",
			service:       models.TacacsService{},
			expectedError: ErrServiceNameEmpty,
		},
		{
			name:    "duplicate name",
			service: models.TacacsService{Name: "shell"},
			seedData: []models.TacacsService{
				{Name: "shell"},
			},
			expectedError: ErrServiceAlreadyExists,
		},
		{
			name:    "successful create",
			service: models.TacacsService{Name: "shell", Description: "exec sessions"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			seedServices(t, db, tc.seedData)

			created, err := Create(db, &tc.service)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)
	seedServices(t, db, []models.TacacsService{
		{Name: "shell", Description: "old"},
	})

	existing, err := Get(db, "shell")
	require.NoError(t, err)

	updated, err := Update(db, existing.ID, &models.TacacsService{
		Name:        "shell",
		Description: "exec sessions",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "exec sessions", updated.Description)

	_, err = Update(db, 999, &models.TacacsService{Name: "ghost"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	seedServices(t, db, []models.TacacsService{
		{Name: "shell"},
	})

	existing, err := Get(db, "shell")
	require.NoError(t, err)

	require.NoError(t, Delete(db, existing.ID))

	_, err = Get(db, "shell")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	assert.ErrorIs(t, Delete(db, existing.ID), ErrServiceNotFound)
	assert.ErrorIs(t, Delete(nil, existing.ID), ErrDBNil)
}
