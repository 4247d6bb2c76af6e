package usecases

import (
	"fmt"
	"strings"
)

// AuthMode decides how credentials are checked.
type AuthMode string

const (
	// AuthModeDemo accepts any password for a known email and lets anyone
	// register any email.
	AuthModeDemo AuthMode = "demo"
	// AuthModeStrict verifies bcrypt hashes and keeps emails unique.
	AuthModeStrict AuthMode = "strict"
)

func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", AuthModeDemo:
		return AuthModeDemo, nil
	case AuthModeStrict:
		return AuthModeStrict, nil
	default:
		return "", fmt.Errorf("unknown auth mode: %s", s)
	}
}
