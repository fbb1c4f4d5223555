package mavissetting

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

	err = db.AutoMigrate(&models.MavisSetting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "LDAP_HOSTS", "ldap://10.0.0.5")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = Create(db, "LDAP_HOSTS", "ldap://10.0.0.6")
	assert.ErrorIs(t, err, ErrSettingAlreadyExists)

	_, err = Create(db, "", "x")
	assert.ErrorIs(t, err, ErrSettingKeyEmpty)
}

func TestSetUpserts(t *testing.T) {
	db := setupTestDB(t)

	// Set creates the key when absent
	created, err := Set(db, "LDAP_BASE", "dc=example,dc=com")
	require.NoError(t, err)
	assert.Equal(t, "dc=example,dc=com", created.Value)

	// and overwrites the value when present, keeping the row
	updated, err := Set(db, "LDAP_BASE", "dc=example,dc=net")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "dc=example,dc=net", updated.Value)

	settings, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}

func TestGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)

	for _, key := range []string{"LDAP_HOSTS", "LDAP_USER", "LDAP_PASSWD", "LDAP_BASE"} {
		_, err := Create(db, key, "x")
		require.NoError(t, err)
	}

	settings, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, settings, 4)

	// insertion order drives the setenv line order in the rendered block
	assert.Equal(t, "LDAP_HOSTS", settings[0].Key)
	assert.Equal(t, "LDAP_BASE", settings[3].Key)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "LDAP_HOSTS", "ldap://10.0.0.5")
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))
	assert.ErrorIs(t, Delete(db, created.ID), ErrSettingNotFound)

	_, err = Get(db, "LDAP_HOSTS")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
