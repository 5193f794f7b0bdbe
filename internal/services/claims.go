package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/harentsoaR/vaxicare-api/internal/repository"
)

// ErrClaimMirrorDivergence means the claim set was updated but the user
// document mirror write failed. The two copies disagree until reconciled by
// hand; callers must not report plain success.
var ErrClaimMirrorDivergence = errors.New("admin claim updated but profile mirror write failed")

// AdminClaimService performs the two-step admin grant/revoke: merge the admin
// flag into the account's claim set, then mirror it into the user document.
// The two writes are independent remote calls with no transaction across
// them; a failure in between is detected, logged and reported, not rolled
// back. Concurrent calls for the same uid are last-write-wins.
type AdminClaimService struct {
	claims   repository.ClaimStore
	profiles repository.ProfileStore
}

func NewAdminClaimService(claims repository.ClaimStore, profiles repository.ProfileStore) *AdminClaimService {
	return &AdminClaimService{claims: claims, profiles: profiles}
}

// SetAdminClaim merges admin into the claim set for uid, then upserts the
// isAdmin mirror on the user document. Authorization and input validation are
// the caller's job; this method only does the writes.
func (s *AdminClaimService) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	current, err := s.claims.GetClaims(ctx, uid)
	if err != nil {
		return fmt.Errorf("read claim set for %s: %w", uid, err)
	}

	current["admin"] = admin
	if err := s.claims.SetClaims(ctx, uid, current); err != nil {
		return fmt.Errorf("write claim set for %s: %w", uid, err)
	}

	if err := s.profiles.MergeAdminFlag(ctx, uid, admin); err != nil {
		log.Printf("CLAIM DIVERGENCE: uid=%s claim set has admin=%v but mirror write failed: %v", uid, admin, err)
		return fmt.Errorf("%w: uid=%s admin=%v: %v", ErrClaimMirrorDivergence, uid, admin, err)
	}

	return nil
}
