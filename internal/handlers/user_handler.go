package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

// ListUsers returns every account, newest first (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	filter := bson.M{}
	if userType := c.Query("userType"); userType != "" {
		filter["userType"] = userType
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("users").Find(context.TODO(), filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "code": "invalid-argument"})
		return
	}

	var user models.User
	err = h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser lets an admin edit another account's profile fields. The isAdmin
// flag is deliberately not editable here; only the claim endpoint touches it
// so the token claim and the mirror cannot drift through this path.
func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "code": "invalid-argument"})
		return
	}

	var req struct {
		DisplayName         string   `json:"displayName"`
		Phone               string   `json:"phone"`
		Photo               string   `json:"photo"`
		UserType            string   `json:"userType"`
		PreferredLocationID string   `json:"preferredLocationId"`
		PatientProfileIDs   []string `json:"patientProfileIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	update := bson.M{}
	if req.DisplayName != "" {
		update["displayName"] = req.DisplayName
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Photo != "" {
		update["photo"] = req.Photo
	}
	if req.UserType != "" {
		if req.UserType != models.UserTypeNormal && req.UserType != models.UserTypePediatrician {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userType must be normal or pediatrician", "code": "invalid-argument"})
			return
		}
		update["userType"] = req.UserType
	}
	if req.PreferredLocationID != "" {
		locID, err := primitive.ObjectIDFromHex(req.PreferredLocationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferredLocationId", "code": "invalid-argument"})
			return
		}
		update["preferredLocationId"] = locID
	}
	if req.PatientProfileIDs != nil {
		ids := make([]primitive.ObjectID, 0, len(req.PatientProfileIDs))
		for _, s := range req.PatientProfileIDs {
			id, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patientProfileIds entry", "code": "invalid-argument"})
				return
			}
			ids = append(ids, id)
		}
		update["patientProfileIds"] = ids
	}

	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("users").UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("users").DeleteOne(context.TODO(), bson.M{"_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Best-effort cleanup of the claim set; the account is gone either way.
	h.DB.Collection("user_claims").DeleteOne(context.TODO(), bson.M{"_id": userID.Hex()})

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
