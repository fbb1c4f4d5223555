package mavis

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/mavissetting"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.MavisSetting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedSettings(t *testing.T, db *gorm.DB, values map[string]string) {
	t.Helper()
	for key, value := range values {
		_, err := mavissetting.Create(db, key, value)
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestLoadSettings(t *testing.T) {
	testCases := []struct {
		name          string
		seed          map[string]string
		expectedHosts []string
		expectedError error
	}{
		{
			name:          "no settings stored",
			expectedError: ErrNoHosts,
		},
		{
			name:          "empty hosts value",
			seed:          map[string]string{KeyHosts: "   "},
			expectedError: ErrNoHosts,
		},
		{
			name:          "single host",
			seed:          map[string]string{KeyHosts: "ldap://10.0.0.5"},
			expectedHosts: []string{"ldap://10.0.0.5"},
		},
		{
			name:          "multiple space separated hosts",
			seed:          map[string]string{KeyHosts: "ldaps://ldap1.example.com ldap2.example.com:389"},
			expectedHosts: []string{"ldaps://ldap1.example.com", "ldap2.example.com:389"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			seedSettings(t, db, tc.seed)

			settings, err := LoadSettings(db)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedHosts, settings.Hosts)
		})
	}
}

func TestLoadSettingsBindCredentials(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, map[string]string{
		KeyHosts:    "ldap://10.0.0.5",
		KeyUser:     "cn=tacacs,dc=example,dc=com",
		KeyPassword: "secret",
		KeyBase:     "dc=example,dc=com",
	})

	settings, err := LoadSettings(db)
	require.NoError(t, err)

	assert.Equal(t, "cn=tacacs,dc=example,dc=com", settings.BindDN)
	assert.Equal(t, "secret", settings.Password)
	assert.Equal(t, "dc=example,dc=com", settings.BaseDN)
}

func TestNormalizeURL(t *testing.T) {
	testCases := []struct {
		host     string
		expected string
	}{
		{host: "10.0.0.5", expected: "ldap://10.0.0.5"},
		{host: "ldap1.example.com:389", expected: "ldap://ldap1.example.com:389"},
		{host: "ldap://10.0.0.5", expected: "ldap://10.0.0.5"},
		{host: "ldaps://ldap1.example.com", expected: "ldaps://ldap1.example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.host, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeURL(tc.host))
		})
	}
}

func TestHostName(t *testing.T) {
	assert.Equal(t, "ldap1.example.com", hostName("ldaps://ldap1.example.com:636"))
	assert.Equal(t, "10.0.0.5", hostName("ldap://10.0.0.5"))
}

func TestCheckUnreachableHost(t *testing.T) {
	settings := &Settings{Hosts: []string{"ldap://127.0.0.1:1"}}

	results := Check(context.Background(), settings)
	require.Len(t, results, 1)

	assert.Equal(t, "ldap://127.0.0.1:1", results[0].Host)
	assert.False(t, results[0].OK)
	assert.NotEmpty(t, results[0].Detail)
}
