// Package id generates prefixed, time-ordered identifiers such as
// "comp-0192f6d2-....".
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixComplaint = "comp"
	PrefixUser      = "user"
	PrefixComment   = "comment"
	PrefixRequest   = "req"
)

// Generator produces unique identifiers for a prefix.
type Generator interface {
	New(prefix string) string
}

// UUIDGenerator issues UUIDv7 values, which sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) New(prefix string) string {
	u, err := uuid.NewV7()
	if err != nil {
		u = uuid.New()
	}
	return WithPrefix(prefix, u.String())
}

// WithPrefix joins prefix and value with a dash. An empty prefix returns
// value unchanged.
func WithPrefix(prefix, value string) string {
	if prefix == "" {
		return value
	}
	return fmt.Sprintf("%s-%s", prefix, value)
}

// HasPrefix reports whether s was issued for prefix.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix+"-")
}
