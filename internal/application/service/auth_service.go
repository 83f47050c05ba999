package service

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/meditrack/pharmacy-pos-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates POS operators. Accounts live in process memory
// alongside the ledger; an admin is seeded at startup from configuration.
type AuthService struct {
	mu    sync.RWMutex
	users map[string]*entity.User // keyed by lowercased email
	jwt   *token.JWTManager
}

// NewAuthService creates an auth service with the given token manager
func NewAuthService(jwtManager *token.JWTManager) *AuthService {
	return &AuthService{
		users: make(map[string]*entity.User),
		jwt:   jwtManager,
	}
}

// TokenPair carries an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         entity.User `json:"user"`
}

// SeedAdmin ensures an admin account exists. Called once at startup.
func (s *AuthService) SeedAdmin(name, email, password string) {
	if _, err := s.Register(name, email, password, "admin"); err != nil {
		log.Printf("Warning: could not seed admin user: %v", err)
	}
}

// Register creates a new operator account
func (s *AuthService) Register(name, email, password, role string) (*entity.User, error) {
	if name == "" || email == "" {
		return nil, apperror.NewValidationError("name and email are required")
	}
	if len(password) < 6 {
		return nil, apperror.NewValidationError("password must be at least 6 characters")
	}
	if role == "" {
		role = "cashier"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return nil, apperror.NewAppError(409, "An account with this email already exists")
	}

	user := &entity.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.users[key] = user

	out := *user
	return &out, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	s.mu.RLock()
	user, exists := s.users[strings.ToLower(email)]
	s.mu.RUnlock()

	if !exists || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperror.NewAppError(401, "Invalid email or password")
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.NewAppError(401, "Invalid or expired refresh token")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == userID {
			return s.issueTokens(user)
		}
	}
	return nil, apperror.NewAppError(401, "Account no longer exists")
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *user,
	}, nil
}
