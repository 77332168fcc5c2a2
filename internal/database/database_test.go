package database

import (
	"testing"

	"github.com/aadhi258/interactive-quiz-app/internal/config"
	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	db, err := Connect(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:", DBLogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []interface{}{&models.Quiz{}, &models.Question{}, &models.Choice{}, &models.QuizSession{}, &models.UserAnswer{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLogLevel(t *testing.T) {
	assert.NotEqual(t, logLevel("silent"), logLevel("info"))
	assert.Equal(t, logLevel("warn"), logLevel("bogus"))
}
