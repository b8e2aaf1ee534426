package auth

import (
	"errors"
	"os"
	"time"

	"venuehours/pkg/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service handles owner authentication
type Service struct {
	ownerRepo OwnerRepository
}

// OwnerRepository interface for owner data access
type OwnerRepository interface {
	GetByEmail(email string) (*models.Owner, error)
	GetByID(id uuid.UUID) (*models.Owner, error)
	Create(owner *models.Owner) error
	UpdateLastLogin(id uuid.UUID) error
}

// NewService creates a new auth service
func NewService(ownerRepo OwnerRepository) *Service {
	return &Service{
		ownerRepo: ownerRepo,
	}
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	OwnerID uuid.UUID `json:"owner_id"`
	VenueID uuid.UUID `json:"venue_id"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}

// Login authenticates an owner and returns an access token
func (s *Service) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	owner, err := s.ownerRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !s.verifyPassword(req.Password, owner.Password) {
		return nil, errors.New("invalid credentials")
	}

	if err := s.ownerRepo.UpdateLastLogin(owner.ID); err != nil {
		return nil, err
	}

	token, err := s.generateAccessToken(owner)
	if err != nil {
		return nil, err
	}

	duration, _ := time.ParseDuration(getEnvOrDefault("JWT_ACCESS_DURATION", "1h"))

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(duration.Seconds()),
		Owner:       *owner,
	}, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// HashPassword hashes a password with bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) generateAccessToken(owner *models.Owner) (string, error) {
	duration, err := time.ParseDuration(getEnvOrDefault("JWT_ACCESS_DURATION", "1h"))
	if err != nil {
		duration = time.Hour
	}

	claims := TokenClaims{
		OwnerID: owner.ID,
		VenueID: owner.VenueID,
		Email:   owner.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   owner.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

func (s *Service) verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func jwtSecret() string {
	return getEnvOrDefault("JWT_SECRET", "dev-secret-change-me")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
