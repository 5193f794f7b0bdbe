package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

func (h *Handler) ListPediatricians(c *gin.Context) {
	filter := bson.M{}
	if locationIDStr := c.Query("locationId"); locationIDStr != "" {
		if locID, err := primitive.ObjectIDFromHex(locationIDStr); err == nil {
			filter["locationId"] = locID
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := h.DB.Collection("pediatricians").Find(context.TODO(), filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pediatricians"})
		return
	}
	defer cursor.Close(context.TODO())

	var pediatricians []models.Pediatrician
	if err = cursor.All(context.TODO(), &pediatricians); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode pediatricians"})
		return
	}
	if pediatricians == nil {
		pediatricians = make([]models.Pediatrician, 0)
	}

	c.JSON(http.StatusOK, pediatricians)
}

func (h *Handler) CreatePediatrician(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Specialty  string `json:"specialty"`
		LocationID string `json:"locationId"`
		Photo      string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid-argument"})
		return
	}

	ped := models.Pediatrician{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Specialty: req.Specialty,
		Photo:     req.Photo,
		CreatedAt: time.Now().UTC(),
	}
	if req.LocationID != "" {
		locID, err := primitive.ObjectIDFromHex(req.LocationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locationId", "code": "invalid-argument"})
			return
		}
		ped.LocationID = locID
	}

	if _, err := h.DB.Collection("pediatricians").InsertOne(context.TODO(), ped); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pediatrician"})
		return
	}

	c.JSON(http.StatusCreated, ped)
}

func (h *Handler) UpdatePediatrician(c *gin.Context) {
	pedID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pediatrician ID", "code": "invalid-argument"})
		return
	}

	var req struct {
		Name       string `json:"name"`
		Specialty  string `json:"specialty"`
		LocationID string `json:"locationId"`
		Photo      string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Specialty != "" {
		update["specialty"] = req.Specialty
	}
	if req.Photo != "" {
		update["photo"] = req.Photo
	}
	if req.LocationID != "" {
		locID, err := primitive.ObjectIDFromHex(req.LocationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locationId", "code": "invalid-argument"})
			return
		}
		update["locationId"] = locID
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("pediatricians").UpdateOne(context.TODO(), bson.M{"_id": pedID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pediatrician"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pediatrician not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pediatrician updated successfully"})
}

func (h *Handler) DeletePediatrician(c *gin.Context) {
	pedID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pediatrician ID", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("pediatricians").DeleteOne(context.TODO(), bson.M{"_id": pedID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pediatrician"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pediatrician not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pediatrician deleted successfully"})
}
