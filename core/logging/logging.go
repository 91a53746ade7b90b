package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"glomnidesigns.GO/cms"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// New builds a JSON production logger, at debug level when debug is set.
func New(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// Init builds the process logger and installs it as L().
func Init(debug bool) (*zap.Logger, error) {
	l, err := New(debug)
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the process logger; a no-op logger until Init or Set is called.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Sync() {
	_ = L().Sync()
}

// CMSObserver logs every CMS call. Failures are logged at warn level.
func CMSObserver(l *zap.Logger) cms.Observer {
	l = l.Named("cms")
	return func(ev cms.Event) {
		fields := []zap.Field{
			zap.String("op", ev.Op),
			zap.String("url", ev.URL),
			zap.Int("status", ev.Status),
			zap.Int("count", ev.Count),
			zap.Duration("duration", ev.Duration),
		}
		if ev.Err != nil {
			l.Warn("cms request failed", append(fields, zap.Error(ev.Err))...)
			return
		}
		if ev.Skipped > 0 {
			l.Warn("cms records skipped", append(fields, zap.Int("skipped", ev.Skipped), zap.Error(ev.SkipErr))...)
			return
		}
		l.Debug("cms response", fields...)
	}
}
