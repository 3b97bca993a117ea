package auth

import "time"

type Authenticator interface {
	GenerateToken(email, name string, ttl time.Duration) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
}
