package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/shared/biztime"
)

const sessionIssuer = "complaintdesk"

// SessionClaims is the identity carried in the persisted session slot.
type SessionClaims struct {
	UserID       string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PolicyNumber string `json:"policyNumber,omitempty"`
	CreatedAt    string `json:"createdAt"`
	jwt.RegisteredClaims
}

// SessionTokenCodec signs and verifies session slot content as HS256 JWTs.
type SessionTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokenCodec returns a codec. A zero ttl issues tokens without an
// expiry.
func NewSessionTokenCodec(secret string, ttl time.Duration) *SessionTokenCodec {
	return &SessionTokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (c *SessionTokenCodec) Encode(u *user.User) (string, error) {
	now := biztime.NowUTC()
	claims := &SessionClaims{
		UserID:       u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		PolicyNumber: u.PolicyNumber(),
		CreatedAt:    u.CreatedAt().UTC().Format(time.RFC3339Nano),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   sessionIssuer,
			Subject:  u.ID(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies token and rebuilds the identity. Every failure wraps
// user.ErrInvalidSession.
func (c *SessionTokenCodec) Decode(token string) (*user.User, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(biztime.NowUTC))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", user.ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return nil, user.ErrInvalidSession
	}

	createdAt, err := time.Parse(time.RFC3339Nano, claims.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad createdAt: %w", user.ErrInvalidSession, err)
	}

	u, err := user.NewUser(claims.UserID, claims.Name, claims.Email, user.Role(claims.Role), claims.PolicyNumber, "", createdAt)
	if err != nil {
		return nil, errors.Join(user.ErrInvalidSession, err)
	}
	return u, nil
}
