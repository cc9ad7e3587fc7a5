package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/jwt"
	"github.com/sarvcafe/cafepos-api/pkg/phone"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login. Non-admin accounts are created inactive
// and must be activated by an admin before login succeeds.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates a cafe account: normalizes the phone, hashes the password
// with bcrypt and persists the user as inactive with role "user".
// Returns ErrInvalidInput on a malformed phone and ErrDuplicate when the
// normalized phone is already registered.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	normalized, ok := phone.Normalize(in.Phone)
	if !ok {
		return nil, fmt.Errorf("%w: phone must be an Iranian mobile number", domain.ErrInvalidInput)
	}
	if in.Name == "" || len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: name and a password of at least 6 characters are required", domain.ErrInvalidInput)
	}
	tier := in.SubscriptionTier
	if tier == "" {
		tier = entity.TierBasic
	}
	if tier != entity.TierBasic && tier != entity.TierProfessional {
		return nil, fmt.Errorf("%w: unknown subscription tier", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByPhone(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Phone:            normalized,
		PasswordHash:     string(hash),
		Role:             entity.RoleUser,
		SubscriptionTier: tier,
		Active:           false, // awaits explicit admin activation
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifies phone/password and mints a session token. Inactive non-admin
// accounts are rejected with ErrAccountInactive before any token is issued.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	normalized, ok := phone.Normalize(in.Phone)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.userRepo.GetByPhone(normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.IsActive() {
		return nil, domain.ErrAccountInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.SubscriptionTier, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse maps a user entity to its API shape.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Phone:            u.Phone,
		Role:             u.Role,
		SubscriptionTier: u.SubscriptionTier,
		Active:           u.IsActive(),
		HasOnlineMenu:    u.HasOnlineMenu,
		CafeImageURL:     u.CafeImageURL,
		InstagramURL:     u.InstagramURL,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
