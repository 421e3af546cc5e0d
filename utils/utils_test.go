package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, nil, func() error {
		calls++
		if calls < 2 {
			return errors.New("flaky")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryGivesUpAfterAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, nil, func() error {
		calls++
		return errors.New("down")
	})
	assert.EqualError(t, err, "down")
	assert.Equal(t, 3, calls)
}

func TestRetryPermanentError(t *testing.T) {
	gone := errors.New("gone")
	calls := 0
	err := Retry(context.Background(), 5, time.Millisecond, func(err error) bool { return errors.Is(err, gone) }, func() error {
		calls++
		return gone
	})
	assert.ErrorIs(t, err, gone)
	assert.Equal(t, 1, calls)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("RESORT_TEST_FLOAT", "12.5")
	t.Setenv("RESORT_TEST_INT", "oops")
	t.Setenv("RESORT_TEST_DUR", "90")

	assert.Equal(t, 12.5, EnvFloat("RESORT_TEST_FLOAT", 1))
	assert.Equal(t, 7, EnvInt("RESORT_TEST_INT", 7))
	assert.Equal(t, 90*time.Second, EnvDuration("RESORT_TEST_DUR", time.Minute))
	assert.Equal(t, "x", EnvOrDefault("RESORT_TEST_MISSING", "x"))

	t.Setenv("RESORT_TEST_PADDED", "  resort_db ")
	assert.Equal(t, "resort_db", EnvOrDefault("RESORT_TEST_PADDED", "x"))
	t.Setenv("RESORT_TEST_BLANK", "   ")
	assert.Equal(t, "x", EnvOrDefault("RESORT_TEST_BLANK", "x"))
}
