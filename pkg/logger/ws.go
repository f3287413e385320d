package logger

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// ReopenableWriteSyncer is a file sink that can be reopened after logrotate moved the file away.
type ReopenableWriteSyncer struct {
	path string
	mu   sync.RWMutex
	file *os.File
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	old := ws.file
	ws.file = file
	ws.mu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.file.Close()
}

// ReloadOnSIGHUP reopens the log file every time the process receives SIGHUP, until ctx is done.
func ReloadOnSIGHUP(ctx context.Context, ws *ReopenableWriteSyncer, log *zap.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		defer signal.Stop(c)
		for {
			select {
			case <-ctx.Done():
				return
			case <-c:
				log.Info("receive logrotate SIGHUP, reloading log file")
				if err := ws.Reload(); err != nil {
					log.Error("failed to reload log file", zap.Error(err))
				} else {
					log.Info("successfully reloaded log file")
				}
			}
		}
	}()
}
