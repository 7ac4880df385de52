package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/mentor-match/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenParams holds everything needed to sign a session token.
type TokenParams struct {
	Issuer   string
	Audience string
	SignKey  string
	Duration time.Duration
	// IssuedAt defaults to the current time when zero.
	IssuedAt time.Time
}

// GenerateJWTToken creates an HMAC-SHA256 signed token for user.
//
// The token carries sub, name, email and role of the user together with
// iss, aud, iat, nbf, exp and a random jti.
func GenerateJWTToken(user models.User, params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := params.IssuedAt
	if now.IsZero() {
		now = time.Now()
	}

	claims := &models.Claims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			Audience:  jwt.ClaimStrings{params.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer,
// audience and time window of tokenString and returns its claims.
//
// Errors wrap the jwt sentinel errors, so callers can tell
// [jwt.ErrTokenExpired] from other failures with errors.Is.
func ValidateAndParseJWTToken(tokenString, signKey, issuer, audience string) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if _, err = claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %w", jwt.ErrTokenInvalidSubject, err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
