package redis

import (
	"context"
	"encoding/json"
	"time"
)

// GetJSON decodes a cached JSON value into dest. It returns false on a miss,
// a decode failure or when Redis is disabled.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	raw, err := Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// SetJSON stores value as JSON with the given TTL
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Set(ctx, key, raw, ttl)
}
