package usecase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// ProfileUseCase tenant profile (cafe name, image, Instagram link).
type ProfileUseCase struct {
	userRepo repository.UserRepository
}

// NewProfileUseCase builds the use case.
func NewProfileUseCase(userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// Get returns the tenant's profile fields.
func (uc *ProfileUseCase) Get(userID string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProfileResponse{
		Name:         user.Name,
		Phone:        user.Phone,
		CafeImageURL: user.CafeImageURL,
		InstagramURL: user.InstagramURL,
	}, nil
}

// Update replaces profile fields. The image URL must be http(s); the
// Instagram URL must additionally point at instagram.com. Empty strings
// clear the stored links.
func (uc *ProfileUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	imageURL, err := parseWebURL(in.CafeImageURL, "")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid image url", domain.ErrInvalidInput)
	}
	instagramURL, err := parseWebURL(in.InstagramURL, "instagram.com")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid instagram url", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Name = name
	user.CafeImageURL = imageURL
	user.InstagramURL = instagramURL
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		Name:         user.Name,
		Phone:        user.Phone,
		CafeImageURL: user.CafeImageURL,
		InstagramURL: user.InstagramURL,
	}, nil
}

// parseWebURL validates an optional http(s) URL, optionally pinned to a host
// suffix. Empty input stays empty.
func parseWebURL(raw, hostContains string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if hostContains != "" && !strings.Contains(u.Hostname(), hostContains) {
		return "", fmt.Errorf("host %q not allowed", u.Hostname())
	}
	return u.String(), nil
}
