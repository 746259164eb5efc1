package config

import (
	"errors"
	"fmt"
	"os"
)

// DefaultTimezone is the venue's IANA timezone. Every date-field extraction
// in the report engine happens in this zone, never in server-local time.
const DefaultTimezone = "America/Mexico_City"

// UserCredential is one dashboard user as provided by the environment
// (USERn_EMAIL / USERn_PASSWORD / USERn_NAME). Passwords arrive in plain
// text here and are hashed by the auth store at load time.
type UserCredential struct {
	ID       int
	Email    string
	Password string
	Name     string
}

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret   string
	SupabaseURL string
	SupabaseKey string
	DatabaseURL string
	Timezone    string
	Port        string
	Users       []UserCredential
}

// AppConfig holds the application-wide configuration
var AppConfig Config

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")
	ErrMissingSource    = errors.New("neither SUPABASE_URL/SUPABASE_ANON_KEY nor DATABASE_URL is set")
)

// Load reads the application configuration from environment variables into
// AppConfig. Missing required settings fail here, before any fetch is
// attempted.
func Load() error {
	cfg := Config{
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_ANON_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Timezone:    os.Getenv("TIMEZONE"),
		Port:        os.Getenv("PORT"),
	}

	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if (cfg.SupabaseURL == "" || cfg.SupabaseKey == "") && cfg.DatabaseURL == "" {
		return ErrMissingSource
	}

	cfg.Users = loadUsers()

	AppConfig = cfg
	return nil
}

// loadUsers collects USER1_*, USER2_*, ... credentials until the first gap.
func loadUsers() []UserCredential {
	var users []UserCredential
	for i := 1; ; i++ {
		email := os.Getenv(fmt.Sprintf("USER%d_EMAIL", i))
		password := os.Getenv(fmt.Sprintf("USER%d_PASSWORD", i))
		if email == "" || password == "" {
			break
		}
		name := os.Getenv(fmt.Sprintf("USER%d_NAME", i))
		if name == "" {
			name = email
		}
		users = append(users, UserCredential{ID: i, Email: email, Password: password, Name: name})
	}
	return users
}
