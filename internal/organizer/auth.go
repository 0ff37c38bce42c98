package organizer

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	OrganizerID int64  `json:"organizer_id"`
	Slug        string `json:"slug"`
	jwt.RegisteredClaims
}

func HashAPISecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyAPISecret checks a merchant API secret against the stored bcrypt hash.
func VerifyAPISecret(o *Organizer, secret string) error {
	if o.APISecretHash == "" {
		return ErrNoSecretSet
	}
	if bcrypt.CompareHashAndPassword([]byte(o.APISecretHash), []byte(secret)) != nil {
		return ErrBadSecret
	}
	return nil
}

func GenerateJWT(o *Organizer, jwtSecret string) (string, error) {
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	claims := Claims{
		OrganizerID: o.ID,
		Slug:        o.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func ParseJWT(tokenStr, jwtSecret string) (*Claims, error) {
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
