package dockerr

import "go.uber.org/zap"

// ZapLogger adapts *zap.SugaredLogger to the core's Logger interface. This
// is the default production logger; package tests inject NopLogger instead.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger builds a production logger with a sensible default config
// (same role as the teacher's utl.Pf/PfMag console helpers, but structured).
func NewZapLogger() (*ZapLogger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{s: z.Sugar()}, nil
}

func (l *ZapLogger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }

// NopLogger discards everything. Used in tests and by callers who don't
// want core warnings surfaced.
type NopLogger struct{}

func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}
