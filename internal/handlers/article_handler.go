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

func (h *Handler) ListArticles(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("articles").Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve articles"})
		return
	}
	defer cursor.Close(context.TODO())

	var articles []models.Article
	if err = cursor.All(context.TODO(), &articles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode articles"})
		return
	}
	if articles == nil {
		articles = make([]models.Article, 0)
	}

	c.JSON(http.StatusOK, articles)
}

func (h *Handler) GetArticle(c *gin.Context) {
	articleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID", "code": "invalid-argument"})
		return
	}

	var article models.Article
	err = h.DB.Collection("articles").FindOne(context.TODO(), bson.M{"_id": articleID}).Decode(&article)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article":  article,
		"imageUrl": h.Images.ResolveImageURL(context.TODO(), article.Image, ""),
	})
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Summary string `json:"summary"`
		Body    string `json:"body" binding:"required"`
		Image   string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid-argument"})
		return
	}

	article := models.Article{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Summary:   req.Summary,
		Body:      req.Body,
		Image:     req.Image,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := h.DB.Collection("articles").InsertOne(context.TODO(), article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	articleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID", "code": "invalid-argument"})
		return
	}

	var req struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
		Body    string `json:"body"`
		Image   string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	update := bson.M{}
	if req.Title != "" {
		update["title"] = req.Title
	}
	if req.Summary != "" {
		update["summary"] = req.Summary
	}
	if req.Body != "" {
		update["body"] = req.Body
	}
	if req.Image != "" {
		update["image"] = req.Image
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("articles").UpdateOne(context.TODO(), bson.M{"_id": articleID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully"})
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	articleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("articles").DeleteOne(context.TODO(), bson.M{"_id": articleID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
