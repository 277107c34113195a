package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// File download tokens are HS256 JWTs binding a storage path to an expiry.
// The signed URL for a generated quote embeds one of these; the download
// route verifies it before streaming the artifact.

var ErrInvalidFileToken = errors.New("invalid or expired file token")

// SignFilePath issues a token granting read access to path for ttl.
func SignFilePath(secret []byte, path string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"path": path,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign file token: %w", err)
	}
	return signed, nil
}

// VerifyFileToken validates a download token and returns the storage path
// it grants access to.
func VerifyFileToken(secret []byte, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidFileToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidFileToken
	}
	path, ok := claims["path"].(string)
	if !ok || path == "" {
		return "", ErrInvalidFileToken
	}
	return path, nil
}
