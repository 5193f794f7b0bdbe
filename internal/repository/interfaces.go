package repository

import (
	"context"
	"time"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

// ClaimStore is the identity provider's claim set for each account.
type ClaimStore interface {
	// GetClaims returns the claim set for uid, or an empty map if none exists.
	GetClaims(ctx context.Context, uid string) (map[string]interface{}, error)
	// SetClaims overwrites the full claim set for uid.
	SetClaims(ctx context.Context, uid string, claims map[string]interface{}) error
}

// ProfileStore mirrors the admin flag into the user document for display.
type ProfileStore interface {
	// MergeAdminFlag upserts {isAdmin: admin} into the user document,
	// preserving all other fields.
	MergeAdminFlag(ctx context.Context, uid string, admin bool) error
}

// DashboardStore serves the read-only aggregation queries. Each call is an
// independent query; callers get no snapshot consistency across them.
type DashboardStore interface {
	Count(ctx context.Context, collection string) (int64, error)
	CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int64, error)
	RecentAppointments(ctx context.Context, limit int64) ([]models.Appointment, error)
	RecentUsers(ctx context.Context, limit int64) ([]models.User, error)
}
