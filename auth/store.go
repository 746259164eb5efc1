package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Brandongr90/la-gruta-dashboard/config"
	"github.com/Brandongr90/la-gruta-dashboard/models"
)

// tokenTTL is the lifetime of an issued session token.
const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
)

type storedUser struct {
	user models.User
	hash []byte
}

// Store validates dashboard credentials and mints session tokens. It is
// built once at startup from the configured user list; plain-text passwords
// are bcrypt-hashed here and discarded. The store never touches the ventas
// source.
type Store struct {
	users  []storedUser
	secret []byte
}

// NewStore hashes the configured credentials and returns a ready store.
func NewStore(creds []config.UserCredential, jwtSecret string) (*Store, error) {
	store := &Store{secret: []byte(jwtSecret)}
	for _, cred := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		store.users = append(store.users, storedUser{
			user: models.User{ID: cred.ID, Email: cred.Email, Name: cred.Name},
			hash: hash,
		})
	}
	return store, nil
}

// Validate checks an email/password pair against the stored users.
func (s *Store) Validate(email, password string) (*models.User, error) {
	for _, stored := range s.users {
		if stored.user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(stored.hash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user := stored.user
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

// GenerateToken mints a signed HS256 session token for a validated user.
func (s *Store) GenerateToken(user models.User) (string, error) {
	claims := models.JwtClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken parses and validates a session token.
func (s *Store) VerifyToken(tokenStr string) (*models.JwtClaims, error) {
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
