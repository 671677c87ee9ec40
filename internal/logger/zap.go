package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger emits JSON log lines through zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap builds a JSON logger writing to out at the given level
func NewZap(out io.Writer, level LogLevel, fields ...zap.Field) *ZapLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(zapLevel(level)),
	)
	return &ZapLogger{sugar: zap.New(core, zap.Fields(fields...)).Sugar()}
}

func (z *ZapLogger) Debug(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Info(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warn(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Error(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered log entries
func (z *ZapLogger) Sync() error {
	return z.sugar.Sync()
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelNone:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
