package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/maproute/internal/pkg/models"
)

// ParseLatLng parses a "lat,lng" pair. Values are taken as written, including
// NaN and Inf.
func ParseLatLng(s string) (models.GeoPoint, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return models.GeoPoint{}, fmt.Errorf("expected lat,lng but got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("invalid longitude: %w", err)
	}

	return models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// MaskString masks a portion of a string with a specified character
func MaskString(s string, start, end int, maskChar string) string {
	if start < 0 || end > len(s) || start >= end {
		return s
	}

	masked := s[:start]
	masked += strings.Repeat(maskChar, end-start)
	masked += s[end:]

	return masked
}

// MaskSecret keeps the first four characters of a secret and masks the rest
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return MaskString(secret, 4, len(secret), "*")
}
