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

// productListItem is the marketing-site view of a product. Prices are
// pointers so the serializer can drop them entirely for bundles/packages
// that cannot be paid as a whole program. The detail endpoint intentionally
// does NOT apply this rule and returns the stored document verbatim; whether
// suppression is a display or a storage rule is inherited ambiguity.
type productListItem struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Name               string   `json:"name"`
	CommonName         string   `json:"commonName,omitempty"`
	Description        string   `json:"description,omitempty"`
	Manufacturer       string   `json:"manufacturer,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	OldPrice           *float64 `json:"oldPrice,omitempty"`
	ImageURL           string   `json:"imageUrl"`
	MinAgeMonths       *int     `json:"minAgeMonths,omitempty"`
	MaxAgeMonths       *int     `json:"maxAgeMonths,omitempty"`
	IncludedProducts   int      `json:"includedProducts,omitempty"`
	CanPayWholeProgram bool     `json:"canPayWholeProgram,omitempty"`
}

func (h *Handler) toListItem(ctx context.Context, p models.Product) productListItem {
	item := productListItem{
		ID:           p.ID.Hex(),
		Type:         p.Type,
		Name:         p.Name,
		CommonName:   p.CommonName,
		Description:  p.Description,
		Manufacturer: p.Manufacturer,
		ImageURL:     h.Images.ResolveImageURL(ctx, p.Image, p.Type),
	}

	switch p.Type {
	case models.ProductTypeVaccine:
		item.Price = &p.Price
		if p.OldPrice > 0 {
			item.OldPrice = &p.OldPrice
		}
		item.MinAgeMonths = p.MinAgeMonths
		item.MaxAgeMonths = p.MaxAgeMonths
	case models.ProductTypeBundle, models.ProductTypePackage:
		item.IncludedProducts = len(p.IncludedProductIDs)
		item.CanPayWholeProgram = p.CanPayWholeProgram
		if p.CanPayWholeProgram {
			item.Price = &p.Price
			if p.OldPrice > 0 {
				item.OldPrice = &p.OldPrice
			}
		}
	default:
		item.Price = &p.Price
	}
	return item
}

// ListProducts is the public catalogue, optionally filtered by ?type=.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := bson.M{}
	if ptype := c.Query("type"); ptype != "" {
		filter["type"] = ptype
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("products").Find(context.TODO(), filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	defer cursor.Close(context.TODO())

	var products []models.Product
	if err = cursor.All(context.TODO(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	items := make([]productListItem, 0, len(products))
	for _, p := range products {
		items = append(items, h.toListItem(context.TODO(), p))
	}

	c.JSON(http.StatusOK, items)
}

// GetProduct returns one product with its stored fields verbatim plus the
// resolved image URL.
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID", "code": "invalid-argument"})
		return
	}

	var product models.Product
	err = h.DB.Collection("products").FindOne(context.TODO(), bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":  product,
		"imageUrl": h.Images.ResolveImageURL(context.TODO(), product.Image, product.Type),
	})
}

// CreateProduct inserts a product after validating its variant fields.
func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC()
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid-argument"})
		return
	}

	if _, err := h.DB.Collection("products").InsertOne(context.TODO(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces the mutable fields of a product. The request carries
// the full document; it is re-validated as a whole so a type change cannot
// leave stale variant fields behind.
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID", "code": "invalid-argument"})
		return
	}

	var existing models.Product
	err = h.DB.Collection("products").FindOne(context.TODO(), bson.M{"_id": productID}).Decode(&existing)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}
	product.ID = productID
	product.CreatedAt = existing.CreatedAt
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid-argument"})
		return
	}

	if _, err := h.DB.Collection("products").ReplaceOne(context.TODO(), bson.M{"_id": productID}, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("products").DeleteOne(context.TODO(), bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
