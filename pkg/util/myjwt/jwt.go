package myjwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager 负责签发和校验登录 token
type Manager struct {
	key    []byte
	issuer string
	expire time.Duration
	now    func() time.Time
}

func New(key, issuer string, expireHours int) *Manager {
	if expireHours <= 0 {
		expireHours = 24 * 30
	}
	return &Manager{
		key:    []byte(key),
		issuer: issuer,
		expire: time.Duration(expireHours) * time.Hour,
		now:    time.Now,
	}
}

func (m *Manager) GenerateToken(userID string, email string) (string, error) {
	if len(m.key) == 0 {
		return "", errors.New("jwt key is empty")
	}

	now := m.now()
	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *Manager) ParseToken(tokenString string) (*CustomClaims, error) {
	if len(m.key) == 0 {
		return nil, errors.New("jwt key is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
