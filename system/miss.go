package system

import (
	"go.uber.org/zap"
)

// missLog reports a dispatch miss once per key so a broken scene does not flood the log every frame
type missLog struct {
	logger *zap.Logger
	seen   map[string]struct{}
}

func newMissLog(logger *zap.Logger, system string) missLog {
	return missLog{
		logger: logger.With(zap.String("system", system)),
		seen:   make(map[string]struct{}),
	}
}

func (m *missLog) report(key string, err error) {
	if _, ok := m.seen[key]; ok {
		return
	}
	m.seen[key] = struct{}{}
	m.logger.Warn("dispatch miss", zap.String("key", key), zap.Error(err))
}

func (m *missLog) reset() {
	clear(m.seen)
}
