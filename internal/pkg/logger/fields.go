package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases zap.Field so callers don't need to import zap directly
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }

func Err(err error) Field { return zap.Error(err) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Float64(key string, val float64) Field { return zap.Float64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val interface{}) Field { return zap.Any(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

// Point logs a coordinate pair as "lat,lng"
func Point(key string, lat, lng float64) Field {
	return zap.Dict(key, zap.Float64("lat", lat), zap.Float64("lng", lng))
}
