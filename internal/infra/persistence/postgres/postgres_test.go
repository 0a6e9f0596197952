package postgres

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Check(t *testing.T) {
	var buf bytes.Buffer
	stats := sql.DBStats{}
	watcher := &poolWatcher{
		stats:    func() sql.DBStats { return stats },
		logger:   slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		slowWait: 50 * time.Millisecond,
	}

	watcher.check()
	assert.Empty(t, buf.String(), "no waits, nothing logged")

	stats.WaitCount, stats.WaitDuration = 2, 10*time.Millisecond
	watcher.check()
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	stats.WaitCount, stats.WaitDuration = 3, 110*time.Millisecond
	watcher.check()
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
	assert.Contains(t, buf.String(), "waited=100ms")
}
