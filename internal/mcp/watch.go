package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// parentPollInterval is how often WatchParent checks the parent PID.
var parentPollInterval = 2 * time.Second

// WatchParent cancels the server context when the parent process goes away
// (the editor or agent host that spawned the server exited). It never reads
// stdin; the stdio transport owns it.
//
// The goroutine exits when ctx is canceled or the parent is gone.
func WatchParent(ctx context.Context, cancel context.CancelFunc, log *slog.Logger) {
	ppid := os.Getppid()
	ticker := time.NewTicker(parentPollInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if os.Getppid() != ppid {
					log.Warn("parent process exited, shutting down", "parent_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
