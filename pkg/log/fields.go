package log

import "time"

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Str creates a string Field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 Field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool Field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration creates a Field carrying a time.Duration.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Time creates a Field carrying a time.Time.
func Time(key string, value time.Time) Field { return Field{Key: key, Value: value} }

// Err creates an "error" Field from an error. A nil err produces a nil value
// so callers can pass it unconditionally.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a Field from an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Component creates the standard "component" Field used to tag a logger
// with the subsystem it belongs to (e.g. "frontend", "registry", "pump").
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }
