package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/vaxicare-api/internal/models"
	"github.com/harentsoaR/vaxicare-api/internal/utils"
)

type RegisterUserRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone"`
	UserType    string `json:"userType"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid-argument"})
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeNormal
	}
	if userType != models.UserTypeNormal && userType != models.UserTypePediatrician {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userType must be normal or pediatrician", "code": "invalid-argument"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:          primitive.NewObjectID(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    hashedPassword,
		Phone:       req.Phone,
		UserType:    userType,
		CreatedAt:   time.Now().UTC(),
	}

	collection := h.DB.Collection("users")
	_, err = collection.InsertOne(context.TODO(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": "invalid-argument"})
		return
	}

	var user models.User
	collection := h.DB.Collection("users")
	err := collection.FindOne(context.TODO(), bson.M{"email": loginReq.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "code": "unauthenticated"})
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "code": "unauthenticated"})
		return
	}

	// The claim set, not the user document, decides what goes into the token.
	admin := false
	var claimDoc models.UserClaims
	err = h.DB.Collection("user_claims").FindOne(context.TODO(), bson.M{"_id": user.ID.Hex()}).Decode(&claimDoc)
	if err == nil {
		admin = claimDoc.Admin()
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.UserType, admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	now := time.Now().UTC()
	collection.UpdateOne(context.TODO(), bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLoginAt": now}})
	user.LastLoginAt = now

	// Don't send password back
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetCurrentUser retrieves the profile of the currently authenticated user.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userIDHex, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated", "code": "unauthenticated"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	var user models.User
	collection := h.DB.Collection("users")
	err = collection.FindOne(context.TODO(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser allows a user to update their own profile.
func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	userIDHex, _ := c.Get("userID")
	userID, _ := primitive.ObjectIDFromHex(userIDHex.(string))

	var req struct {
		DisplayName         string `json:"displayName"`
		Phone               string `json:"phone"`
		Photo               string `json:"photo"`
		PreferredLocationID string `json:"preferredLocationId"`
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
	if req.PreferredLocationID != "" {
		locID, err := primitive.ObjectIDFromHex(req.PreferredLocationID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferredLocationId", "code": "invalid-argument"})
			return
		}
		update["preferredLocationId"] = locID
	}

	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided", "code": "invalid-argument"})
		return
	}

	collection := h.DB.Collection("users")
	result, err := collection.UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
