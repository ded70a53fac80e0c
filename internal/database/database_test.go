package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/summarizer-api/internal/models"
)

func TestInitializeInMemory(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrateReport(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate(&models.Report{}))
	assert.True(t, db.Migrator().HasTable(&models.Report{}))
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.HealthCheck())
}
