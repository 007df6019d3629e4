package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dsatutor/db"
	"dsatutor/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo   db.UserRepository
	secret []byte
}

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID   string
	Username string
}

func NewAuthService(repo db.UserRepository, secret string) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret)}
}

func (s *AuthService) Register(username, password string) (*models.AuthResponse, error) {
	log.Printf("[INFO] Starting registration for username %q", username)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			log.Printf("[INFO] Registration rejected, username %q taken", username)
			return nil, ErrUsernameTaken
		}
		log.Printf("[ERROR] Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Successfully registered user %q", username)
	return &models.AuthResponse{Token: token, Username: user.Username}, nil
}

func (s *AuthService) Login(username, password string) (*models.AuthResponse, error) {
	log.Printf("[INFO] Starting login for username %q", username)

	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("[ERROR] Failed to load user: %v", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Printf("[INFO] Login rejected for username %q", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Successfully logged in user %q", username)
	return &models.AuthResponse{Token: token, Username: user.Username}, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: userID, Username: username}, nil
}
