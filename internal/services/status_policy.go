package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jmcgreevy/mulligan/internal/models"
)

var ErrInvalidCabin = errors.New("invalid cabin")

// ParseCabin turns a form value into a cabin assignment. Blank means no
// cabin yet.
func ParseCabin(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	cabin, err := strconv.Atoi(raw)
	if err != nil || cabin < models.MinCabin || cabin > models.MaxCabin {
		return nil, ErrInvalidCabin
	}
	return &cabin, nil
}
