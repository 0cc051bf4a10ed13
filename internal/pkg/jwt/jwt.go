package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "ems-portal"

// PurposeAdminReset marks tokens mailed for the admin password reset flow
const PurposeAdminReset = "admin_reset"

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// ClientClaims identifies the browser (client) a set of sessions belongs to
type ClientClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// ResetClaims represents the admin password reset token claims
type ResetClaims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateClientToken signs a client id. The token has no expiry of its own;
// the client cookie max-age and the session retention bound its lifetime.
func GenerateClientToken(clientID, secret string) (string, error) {
	now := time.Now()
	claims := ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   issuer,
			Subject:  clientID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateClientToken validates a client token and returns its claims
func ValidateClientToken(tokenString, secret string) (*ClientClaims, error) {
	claims := &ClientClaims{}
	if err := parse(tokenString, secret, claims); err != nil {
		return nil, err
	}
	if claims.ClientID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GenerateResetToken generates a short-lived admin password reset token
func GenerateResetToken(adminID uint, email, tokenID, secret string, expiryMinutes int) (string, error) {
	now := time.Now()
	claims := ResetClaims{
		AdminID: adminID,
		Email:   email,
		Purpose: PurposeAdminReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateResetToken validates an admin reset token and returns claims
func ValidateResetToken(tokenString, secret string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := parse(tokenString, secret, claims); err != nil {
		return nil, err
	}
	if claims.Purpose != PurposeAdminReset || claims.AdminID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func parse(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}

	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
