package account

import (
	"context"
	"errors"
	"strings"

	"github.com/Dhruv40689/resume-builder/internal/profiles"
)

// Service migrates guest-owned profile data to an authenticated user.
type Service struct {
	Repo profiles.Repo
}

type ClaimResult struct {
	MigratedProfiles int `json:"migratedProfiles"`
}

func NewService(repo profiles.Repo) *Service {
	return &Service{Repo: repo}
}

type guestClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	claimer, ok := s.Repo.(guestClaimer)
	if !ok {
		return ClaimResult{}, errors.New("profiles repo does not support claim")
	}
	count, err := claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedProfiles: count}, nil
}
