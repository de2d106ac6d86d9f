package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"communityguestbook/internal/domain"
)

type moderatorClaims struct {
	jwt.RegisteredClaims
}

// JWTVerifier verifies moderator bearer tokens signed with HS256. Tokens are
// issued out of band (see cmd/issuetoken); this service only consumes them.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a domain.TokenVerifier for the given shared secret.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns its subject.
func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &moderatorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*moderatorClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

// IssueModeratorToken signs a moderator token for the given subject. Used by
// the issuetoken command, not by the request path.
func IssueModeratorToken(secret, moderatorID string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := moderatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   moderatorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
