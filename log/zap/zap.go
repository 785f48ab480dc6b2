// Package zap adapts a go.uber.org/zap logger to the jsonsync.Logger
// interface.
package zap

import (
	"github.com/unkn0wn-root/jsonsync"
	"go.uber.org/zap"
)

type ZapLogger struct{ L *zap.Logger }

var _ jsonsync.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f jsonsync.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f jsonsync.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f jsonsync.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f jsonsync.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f jsonsync.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
