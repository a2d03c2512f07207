package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	t.Run("no new waits", func(t *testing.T) {
		prev := sql.DBStats{WaitCount: 3, WaitDuration: time.Second}

		_, attrs, waited := poolWaitReport(prev, prev)

		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		prev := sql.DBStats{WaitCount: 1, WaitDuration: 10 * time.Millisecond}
		cur := sql.DBStats{WaitCount: 3, WaitDuration: 30 * time.Millisecond, InUse: 4}

		level, attrs, waited := poolWaitReport(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avgWait", 10*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("inUseConns", 4))
	})

	t.Run("long waits log at warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 1, WaitDuration: dbPoolWarnDurationThreshold}

		level, _, waited := poolWaitReport(sql.DBStats{}, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
