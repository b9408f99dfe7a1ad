package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	Signin(ctx context.Context, input SigninInput) (*domain.User, string, error)
	VerifyToken(token string) (*Claims, error)
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserID int64
	Email  string
	Role   domain.UserRole
}

type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users           repository.UserRepository
	secret          []byte
	tokenTTL        time.Duration
	startingBalance int64
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration, startingBalance int64) *AuthService {
	return &AuthService{
		users:           users,
		secret:          []byte(secret),
		tokenTTL:        tokenTTL,
		startingBalance: startingBalance,
	}
}

// Signup registers the user, seeds their wallet and returns a session token.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.UserRoleNormal,
	}
	if err := s.users.CreateWithWallet(ctx, user, s.startingBalance); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Signin(ctx context.Context, input SigninInput) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) VerifyToken(token string) (*Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return &Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.UserRole(claims.Role),
	}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

var _ AuthUseCase = (*AuthService)(nil)
