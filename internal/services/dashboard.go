package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harentsoaR/vaxicare-api/internal/models"
	"github.com/harentsoaR/vaxicare-api/internal/repository"
)

// Both recent lists fetch as many entries as the merged feed can show, so a
// feed of one entity kind can still fill up.
const (
	recentListLimit  = 8
	activityFeedSize = 8
)

// ActivityItem is one entry of the merged recent-activity feed.
type ActivityItem struct {
	Kind      string    `json:"kind"` // "appointment" or "user"
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardSummary struct {
	TotalUsers         int64                `json:"totalUsers"`
	TotalPediatricians int64                `json:"totalPediatricians"`
	TotalProducts      int64                `json:"totalProducts"`
	TotalAppointments  int64                `json:"totalAppointments"`
	TotalArticles      int64                `json:"totalArticles"`
	TotalLocations     int64                `json:"totalLocations"`
	AppointmentsToday  int64                `json:"appointmentsToday"`
	AppointmentsInWeek int64                `json:"appointmentsThisWeek"`
	RecentAppointments []models.Appointment `json:"recentAppointments"`
	RecentUsers        []models.User        `json:"recentUsers"`
	RecentActivity     []ActivityItem       `json:"recentActivity"`
	GeneratedAt        time.Time            `json:"generatedAt"`
}

// DashboardService folds a fixed set of read queries into one summary. The
// queries run concurrently and are awaited jointly; each one sees its own
// instant of the store, there is no shared snapshot.
type DashboardService struct {
	store repository.DashboardStore
	now   func() time.Time
}

func NewDashboardService(store repository.DashboardStore) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

func (s *DashboardService) BuildSummary(ctx context.Context) (*DashboardSummary, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Week starts Monday.
	offset := (int(now.Weekday()) + 6) % 7
	weekStart := dayStart.AddDate(0, 0, -offset)

	summary := &DashboardSummary{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)

	counts := []struct {
		collection string
		dst        *int64
	}{
		{"users", &summary.TotalUsers},
		{"pediatricians", &summary.TotalPediatricians},
		{"products", &summary.TotalProducts},
		{"appointments", &summary.TotalAppointments},
		{"articles", &summary.TotalArticles},
		{"locations", &summary.TotalLocations},
	}
	for _, c := range counts {
		c := c
		g.Go(func() error {
			n, err := s.store.Count(gctx, c.collection)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		n, err := s.store.CountAppointmentsBetween(gctx, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return err
		}
		summary.AppointmentsToday = n
		return nil
	})
	g.Go(func() error {
		n, err := s.store.CountAppointmentsBetween(gctx, weekStart, weekStart.AddDate(0, 0, 7))
		if err != nil {
			return err
		}
		summary.AppointmentsInWeek = n
		return nil
	})

	g.Go(func() error {
		apts, err := s.store.RecentAppointments(gctx, recentListLimit)
		if err != nil {
			return err
		}
		summary.RecentAppointments = apts
		return nil
	})
	g.Go(func() error {
		users, err := s.store.RecentUsers(gctx, recentListLimit)
		if err != nil {
			return err
		}
		summary.RecentUsers = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.RecentActivity = mergeRecentActivity(summary.RecentAppointments, summary.RecentUsers, activityFeedSize)
	return summary, nil
}

// mergeRecentActivity folds appointment and user creations into one feed of
// at most limit entries, newest first.
func mergeRecentActivity(appointments []models.Appointment, users []models.User, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(appointments)+len(users))
	for _, a := range appointments {
		items = append(items, ActivityItem{
			Kind:      "appointment",
			ID:        a.ID.Hex(),
			Title:     a.PatientName + " booked " + a.Type,
			Timestamp: a.CreatedAt,
		})
	}
	for _, u := range users {
		items = append(items, ActivityItem{
			Kind:      "user",
			ID:        u.ID.Hex(),
			Title:     u.DisplayName + " joined",
			Timestamp: u.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
