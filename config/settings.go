package config

import (
	"context"
	"log"
	"time"

	"resort-backend/pricing"
	"resort-backend/storage"
	"resort-backend/utils"
)

// Settings are the business and runtime knobs read from the environment.
type Settings struct {
	Port          string
	HourlyLateFee float64
	GSTRate       float64
	RoomCount     int
	RedisURL      string
	SessionTTL    time.Duration
}

func LoadSettings() Settings {
	return Settings{
		Port:          utils.EnvOrDefault("PORT", "8080"),
		HourlyLateFee: utils.EnvFloat("HOURLY_LATE_FEE", pricing.DefaultHourlyLateFee),
		GSTRate:       utils.EnvFloat("GST_RATE", pricing.DefaultGSTRate),
		RoomCount:     utils.EnvInt("ROOM_COUNT", pricing.DefaultRoomCount),
		RedisURL:      utils.EnvOrDefault("REDIS_URL", ""),
		SessionTTL:    utils.EnvDuration("SESSION_TTL", 12*time.Hour),
	}
}

// NewSelectionStore uses Redis when REDIS_URL is set and reachable,
// otherwise keeps selections in process memory.
func NewSelectionStore(ctx context.Context, s Settings) storage.SelectionStore {
	if s.RedisURL == "" {
		log.Println("⚠️  REDIS_URL not set, room selections kept in memory")
		return storage.NewMemorySelectionStore()
	}

	client, err := storage.NewRedisClient(s.RedisURL)
	if err != nil {
		log.Printf("⚠️  %v; room selections kept in memory", err)
		return storage.NewMemorySelectionStore()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable (%v); room selections kept in memory", err)
		_ = client.Close()
		return storage.NewMemorySelectionStore()
	}
	return storage.NewRedisSelectionStore(client, s.SessionTTL)
}
