package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	models "RPGLobby/models/postgres"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity of every issued token.
const TokenTTL = time.Hour

// Identity is what a verified token vouches for. The role is the one the
// user had at login time.
type Identity struct {
	UserID uint
	Role   models.Role
}

func (i Identity) IsMaster() bool { return i.Role == models.RoleMaster }
func (i Identity) IsPlayer() bool { return i.Role == models.RolePlayer }

// Claims is the token payload: {id, role, exp}.
type Claims struct {
	ID   uint        `json:"id"`
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret, now: time.Now}
}

// Issue signs a token for user valid for TokenTTL.
func (t *TokenIssuer) Issue(user *models.User) (string, time.Time, error) {
	expiresAt := t.now().Add(TokenTTL)
	claims := Claims{
		ID:   user.ID,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates signature, algorithm and expiry.
func (t *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenKey is the revocation key for a token. Tokens are never stored as is.
func TokenKey(tokenStr string) string {
	sum := sha256.Sum256([]byte(tokenStr))
	return hex.EncodeToString(sum[:])
}
