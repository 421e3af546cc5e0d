package config

import (
	"context"
	"testing"
	"time"

	"resort-backend/storage"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("HOURLY_LATE_FEE", "")
	t.Setenv("GST_RATE", "")
	t.Setenv("ROOM_COUNT", "")
	t.Setenv("SESSION_TTL", "")

	s := LoadSettings()
	assert.Equal(t, 200.0, s.HourlyLateFee)
	assert.Equal(t, 18.0, s.GSTRate)
	assert.Equal(t, 33, s.RoomCount)
	assert.Equal(t, 12*time.Hour, s.SessionTTL)
}

func TestLoadSettingsOverrides(t *testing.T) {
	t.Setenv("HOURLY_LATE_FEE", "250")
	t.Setenv("ROOM_COUNT", "40")
	t.Setenv("SESSION_TTL", "30m")

	s := LoadSettings()
	assert.Equal(t, 250.0, s.HourlyLateFee)
	assert.Equal(t, 40, s.RoomCount)
	assert.Equal(t, 30*time.Minute, s.SessionTTL)
}

func TestSelectionStoreFallsBackToMemory(t *testing.T) {
	store := NewSelectionStore(context.Background(), Settings{})
	_, ok := store.(*storage.MemorySelectionStore)
	assert.True(t, ok)
}

func TestMysqlDSNFromURL(t *testing.T) {
	dsn, name, err := mysqlDSNFromURL("mysql://u:p@db.example:3307/resort")
	assert.NoError(t, err)
	assert.Equal(t, "resort", name)
	assert.Contains(t, dsn, "u:p@tcp(db.example:3307)/resort?")
	assert.Contains(t, dsn, "parseTime=True")

	_, _, err = mysqlDSNFromURL("mysql://u:p@db.example:3307/")
	assert.Error(t, err)
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := dialector()
	assert.Error(t, err)
}

func TestPostgresDSNFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", " pg.internal ")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")

	dsn := resolvePostgresDSN()
	assert.Contains(t, dsn, "host=pg.internal ")
	assert.Contains(t, dsn, "dbname=resort_db")
	assert.Contains(t, dsn, "sslmode=disable")
}
