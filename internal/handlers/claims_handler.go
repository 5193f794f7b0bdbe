package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/vaxicare-api/internal/services"
)

type setAdminClaimRequest struct {
	UID   string `json:"uid"`
	Admin *bool  `json:"admin"`
}

// SetAdminClaim grants or revokes the admin claim on a target account. The
// caller must already be an admin; the first admin is seeded out-of-band.
// The claim-set write and the user-document mirror write are sequential and
// not transactional; a divergence between them is reported, not rolled back.
func (h *Handler) SetAdminClaim(c *gin.Context) {
	// The admin guard on the route group already rejected non-admins, but the
	// contract of this endpoint is that no mutation ever happens for an
	// unauthorized caller, so check again here.
	if _, exists := c.Get("userID"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller is not authenticated", "code": "unauthenticated"})
		return
	}
	if !c.GetBool("isAdmin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Caller is not an admin", "code": "permission-denied"})
		return
	}

	var req setAdminClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}
	if req.UID == "" || req.Admin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid and admin are required", "code": "invalid-argument"})
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.UID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid is not a valid user id", "code": "invalid-argument"})
		return
	}

	err := h.ClaimSvc.SetAdminClaim(context.TODO(), req.UID, *req.Admin)
	if errors.Is(err, services.ErrClaimMirrorDivergence) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Admin claim was updated but the profile mirror write failed; the two copies disagree",
			"code":  "claim-mirror-divergence",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin claim", "code": "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "uid": req.UID, "admin": *req.Admin})
}
