package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/internal/utils"
	"github.com/MKhiriev/mentor-match/models"
)

// tokenDuration is the lifetime of every issued session token.
const tokenDuration = 24 * time.Hour

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost applied to new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer and tokenAudience are embedded in every issued token and
	// required of every parsed one.
	tokenIssuer   string
	tokenAudience string

	// now returns the issue time of new tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenAudience:    cfg.TokenAudience,
		now:              time.Now,
		logger:           logger,
	}
}

// Signup hashes the password and persists a new user.
//
// Returns the persisted user (with a server-assigned ID) or a wrapped storage
// error, e.g. [store.ErrEmailAlreadyExists].
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("failed to hash password")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:           request.Email,
		PasswordHash:    passwordHash,
		Name:            request.Name,
		Role:            request.Role,
		Bio:             request.Bio,
		Skills:          request.Skills,
		ExperienceYears: request.ExperienceYears,
		HourlyRate:      request.HourlyRate,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user signed up")
	return user, nil
}

// Login looks the account up by e-mail and compares the password hash.
//
// An unknown e-mail and a wrong password both yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", request.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, request.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, err
	}
	if !ok {
		log.Warn().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for user valid for 24 hours.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user, utils.TokenParams{
		Issuer:   a.tokenIssuer,
		Audience: a.tokenAudience,
		SignKey:  a.tokenSignKey,
		Duration: tokenDuration,
		IssuedAt: a.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates tokenString and re-reads the user it names, so a
// token whose subject no longer exists is rejected.
//
// Returns [ErrTokenIsExpired] for expired tokens, [ErrTokenIsMalformed] for
// any other verification failure and [ErrUnauthenticated] when the subject
// is gone.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.User{}, ErrTokenIsExpired
	}
	if err != nil {
		log.Debug().Err(err).Msg("token verification failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsMalformed, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsMalformed, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Int64("user_id", userID).Msg("token subject no longer exists")
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
