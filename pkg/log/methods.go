package log

import (
	"context"
	"log/slog"
	"os"
)

func (b *BaseLogger) baseAttrs() []slog.Attr {
	return attrsFromMap(b.fields)
}

func (b *BaseLogger) emit(level Level, msg string, fields []Field) {
	attrs := append(b.baseAttrs(), attrsFromFieldSlice(fields)...)
	b.slogLogger.LogAttrs(context.Background(), toSlogLevel(level), msg, attrs...)
}

func (b *BaseLogger) emitArgs(level Level, msg string, args []interface{}) {
	attrs := append(b.baseAttrs(), argsToAttrs(args)...)
	b.slogLogger.LogAttrs(context.Background(), toSlogLevel(level), msg, attrs...)
}

// Debug implements Logger.
func (b *BaseLogger) Debug(msg string, fields ...Field) { b.emit(DebugLevel, msg, fields) }

// Info implements Logger.
func (b *BaseLogger) Info(msg string, fields ...Field) { b.emit(InfoLevel, msg, fields) }

// Warn implements Logger.
func (b *BaseLogger) Warn(msg string, fields ...Field) { b.emit(WarnLevel, msg, fields) }

// Error implements Logger.
func (b *BaseLogger) Error(msg string, fields ...Field) { b.emit(ErrorLevel, msg, fields) }

// Fatal implements Logger. It logs at FatalLevel then terminates the
// process; callers should not rely on code after Fatal running.
func (b *BaseLogger) Fatal(msg string, fields ...Field) {
	b.emit(FatalLevel, msg, fields)
	os.Exit(1)
}

// Debugf implements Logger.
func (b *BaseLogger) Debugf(msg string, args ...interface{}) { b.emitArgs(DebugLevel, msg, args) }

// Infof implements Logger.
func (b *BaseLogger) Infof(msg string, args ...interface{}) { b.emitArgs(InfoLevel, msg, args) }

// Warnf implements Logger.
func (b *BaseLogger) Warnf(msg string, args ...interface{}) { b.emitArgs(WarnLevel, msg, args) }

// Errorf implements Logger.
func (b *BaseLogger) Errorf(msg string, args ...interface{}) { b.emitArgs(ErrorLevel, msg, args) }

// Fatalf implements Logger.
func (b *BaseLogger) Fatalf(msg string, args ...interface{}) {
	b.emitArgs(FatalLevel, msg, args)
	os.Exit(1)
}

func (b *BaseLogger) clone() *BaseLogger {
	nb := *b
	nb.fields = make(Fields, len(b.fields)+1)
	for k, v := range b.fields {
		nb.fields[k] = v
	}
	return &nb
}

// WithField implements Logger.
func (b *BaseLogger) WithField(key string, value interface{}) Logger {
	nb := b.clone()
	nb.fields[key] = value
	return nb
}

// WithFields implements Logger.
func (b *BaseLogger) WithFields(fields Fields) Logger {
	nb := b.clone()
	for k, v := range fields {
		nb.fields[k] = v
	}
	return nb
}

// WithError implements Logger.
func (b *BaseLogger) WithError(err error) Logger {
	if err == nil {
		return b
	}
	return b.WithField("error", err.Error())
}

// With implements Logger.
func (b *BaseLogger) With(fields ...Field) Logger {
	nb := b.clone()
	for _, f := range fields {
		nb.fields[f.Key] = f.Value
	}
	return nb
}

// WithContext implements Logger.
func (b *BaseLogger) WithContext(ctx context.Context) Logger {
	extracted := ContextExtractor(ctx)
	if len(extracted) == 0 {
		return b
	}
	return b.WithFields(extracted)
}

// WithComponent implements Logger.
func (b *BaseLogger) WithComponent(component string) Logger {
	return b.WithField(ComponentKey, component)
}

// SetLevel implements Logger.
func (b *BaseLogger) SetLevel(level Level) { b.level = level }

// GetLevel implements Logger.
func (b *BaseLogger) GetLevel() Level { return b.level }
