package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/vaxicare-api/internal/services"
	"github.com/harentsoaR/vaxicare-api/internal/storage"
)

// Handler carries the database handle and the services every endpoint needs.
type Handler struct {
	DB              *mongo.Database
	ClaimSvc        *services.AdminClaimService
	DashboardSvc    *services.DashboardService
	NotificationSvc *services.NotificationService
	Images          *storage.ImageStore
	Blobs           *storage.GridFSBlobs
}

func NewHandler(
	db *mongo.Database,
	claimSvc *services.AdminClaimService,
	dashboardSvc *services.DashboardService,
	notificationSvc *services.NotificationService,
	images *storage.ImageStore,
	blobs *storage.GridFSBlobs,
) *Handler {
	return &Handler{
		DB:              db,
		ClaimSvc:        claimSvc,
		DashboardSvc:    dashboardSvc,
		NotificationSvc: notificationSvc,
		Images:          images,
		Blobs:           blobs,
	}
}
