// Package storage keeps the app's JSON documents (bookings, trips, profile, session) under string keys.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	KeyUser          = "user"
	KeyUserType      = "userType"
	KeyBookings      = "bookings"
	KeyDriverProfile = "driverProfile"
	KeyTrips         = "trips"
	KeyRatings       = "ratings"

	KeyProfileDoc     = "driver-profile"
	KeyPhotoDoc       = "driver-photo"
	KeyFullProfileDoc = "driver-full-profile"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a whole-document key/value store. Put replaces the previous value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
	Driver() string
}

// GetJSON decodes key into dst. It reports false when the key is absent or holds JSON null.
func GetJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// PutJSON stores v as indented JSON.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
