package logging

import "time"

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration creates a duration field rendered in milliseconds.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Error creates an error field; nil errors render as "<nil>".
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a field with an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Component names the subsystem emitting the entry.
func Component(name string) Field { return Field{Key: "component", Value: name} }

// Operation names the operation being performed.
func Operation(name string) Field { return Field{Key: "operation", Value: name} }

// Latency records an elapsed duration.
func Latency(d time.Duration) Field { return Field{Key: "latency_ms", Value: d.Milliseconds()} }

// Count records a generic count.
func Count(n int) Field { return Field{Key: "count", Value: n} }

// Path records a filesystem path.
func Path(p string) Field { return Field{Key: "path", Value: p} }

// Stage names the analysis stage a log entry belongs to.
func Stage(name string) Field { return Field{Key: "stage", Value: name} }

// NodeID records a node identifier.
func NodeID(id uint64) Field { return Field{Key: "node_id", Value: id} }

// EdgeID records an edge identifier in "u-v" form.
func EdgeID(id string) Field { return Field{Key: "edge_id", Value: id} }
