// Package auth registers users, issues tokens and verifies them. A verified
// token is trusted on its own: the credential store is not consulted, so a
// role change only takes effect after the user logs in again.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	redis_models "RPGLobby/models/redis"
	"RPGLobby/services/redis"
	"RPGLobby/utils"

	"github.com/samber/oops"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Service struct {
	db      *gorm.DB
	tokens  *TokenIssuer
	revoker redis.Revoker
	log     *slog.Logger
}

func NewService(db *gorm.DB, tokens *TokenIssuer, revoker redis.Revoker, log *slog.Logger) *Service {
	return &Service{db: db, tokens: tokens, revoker: revoker, log: log}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" || in.Role == "" {
		return nil, apperr.Validation("name, email, password and role are required")
	}
	role := models.Role(in.Role)
	if !role.Valid() {
		return nil, apperr.Validation("role must be %q or %q", models.RolePlayer, models.RoleMaster)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, oops.Wrapf(err, "check email")
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, oops.Wrapf(err, "hash password")
	}
	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, oops.Wrapf(err, "create user")
	}

	s.log.InfoContext(ctx, "user registered", slog.Uint64("user_id", uint64(user.ID)), slog.String("role", string(role)))
	return user, nil
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", apperr.Validation("email and password are required")
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if utils.IsNotFound(err) {
			return "", apperr.InvalidCredentials()
		}
		return "", oops.Wrapf(err, "find user")
	}

	ok, err := CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", oops.Wrapf(err, "compare password")
	}
	if !ok {
		return "", apperr.InvalidCredentials()
	}

	token, _, err := s.tokens.Issue(&user)
	if err != nil {
		return "", oops.Wrapf(err, "sign token")
	}
	return token, nil
}

// Verify resolves a bearer token into the identity it carries.
func (s *Service) Verify(ctx context.Context, token string) (Identity, error) {
	claims, err := s.claims(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: claims.ID, Role: claims.Role}, nil
}

// Logout revokes token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.claims(ctx, token)
	if err != nil {
		return err
	}
	expiresAt := claims.ExpiresAt.Time
	entry := redis_models.RevokedToken{UserID: claims.ID, RevokedAt: s.tokens.now(), ExpiresAt: expiresAt}
	if err := s.revoker.Revoke(ctx, TokenKey(token), entry, time.Until(expiresAt)); err != nil {
		return oops.Wrapf(err, "revoke token")
	}
	return nil
}

func (s *Service) claims(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, apperr.Unauthorized("token not provided")
	}
	claims, err := s.tokens.Parse(token)
	if err != nil || !claims.Role.Valid() {
		return nil, apperr.Forbidden("invalid token")
	}
	revoked, err := s.revoker.IsRevoked(ctx, TokenKey(token))
	if err != nil {
		return nil, oops.Wrapf(err, "check revocation")
	}
	if revoked {
		return nil, apperr.Forbidden("invalid token")
	}
	return claims, nil
}
