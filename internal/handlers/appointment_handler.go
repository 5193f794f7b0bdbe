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

// CreateAppointment books a vaccination slot for the authenticated user.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req struct {
		DateTime   string `json:"dateTime" binding:"required"`
		LocationID string `json:"locationId" binding:"required"`
		Type       string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, use RFC3339", "code": "invalid-argument"})
		return
	}

	locationID, err := primitive.ObjectIDFromHex(req.LocationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locationId", "code": "invalid-argument"})
		return
	}
	var location models.Location
	err = h.DB.Collection("locations").FindOne(context.TODO(), bson.M{"_id": locationID}).Decode(&location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown location", "code": "invalid-argument"})
		return
	}

	userIDHex, _ := c.Get("userID")
	patientID, _ := primitive.ObjectIDFromHex(userIDHex.(string))

	// Get full patient details for the confirmation SMS
	var patient models.User
	err = h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not find user details"})
		return
	}

	apt := models.Appointment{
		ID:           primitive.NewObjectID(),
		PatientID:    patientID,
		PatientName:  patient.DisplayName,
		LocationName: location.Name,
		Type:         req.Type,
		Status:       models.AppointmentScheduled,
		DateTime:     dateTime,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = h.DB.Collection("appointments").InsertOne(context.TODO(), apt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	h.NotificationSvc.SendAppointmentConfirmationSMS(&patient, &apt)

	c.JSON(http.StatusCreated, apt)
}

// GetAppointments lists appointments with optional filters. Admins see all;
// everyone else is forced onto their own.
func (h *Handler) GetAppointments(c *gin.Context) {
	userIDHex, _ := c.Get("userID")
	isAdmin := c.GetBool("isAdmin")

	filter := bson.M{}
	if !isAdmin {
		patientID, err := primitive.ObjectIDFromHex(userIDHex.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in token"})
			return
		}
		filter["patientId"] = patientID
	}

	// Filter by date range (e.g., /api/appointments?startDate=2026-08-01&endDate=2026-08-31)
	if startDateStr := c.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			filter["dateTime"] = bson.M{"$gte": startDate}
		}
	}
	if endDateStr := c.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			// Add time to include the entire end day
			endDate = endDate.Add(23*time.Hour + 59*time.Minute)
			if f, ok := filter["dateTime"].(bson.M); ok {
				f["$lte"] = endDate
			} else {
				filter["dateTime"] = bson.M{"$lte": endDate}
			}
		}
	}

	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	// Admins can look up a specific patient's appointments
	if isAdmin {
		if patientIDQuery := c.Query("patientId"); patientIDQuery != "" {
			pID, err := primitive.ObjectIDFromHex(patientIDQuery)
			if err == nil {
				filter["patientId"] = pID
			}
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}})

	cursor, err := h.DB.Collection("appointments").Find(context.TODO(), filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	defer cursor.Close(context.TODO())

	var appointments []models.Appointment
	if err = cursor.All(context.TODO(), &appointments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode appointments"})
		return
	}

	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}

	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointment lets an admin reschedule or edit an appointment.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID", "code": "invalid-argument"})
		return
	}

	var req struct {
		DateTime     *string `json:"dateTime,omitempty"`
		LocationName *string `json:"locationName,omitempty"`
		Type         *string `json:"type,omitempty"`
		Status       *string `json:"status,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "code": "invalid-argument"})
		return
	}

	updateFields := bson.M{}
	if req.DateTime != nil {
		if t, err := time.Parse(time.RFC3339, *req.DateTime); err == nil {
			updateFields["dateTime"] = t
		}
	}
	if req.LocationName != nil {
		updateFields["locationName"] = *req.LocationName
	}
	if req.Type != nil {
		updateFields["type"] = *req.Type
	}
	if req.Status != nil {
		updateFields["status"] = *req.Status
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update", "code": "invalid-argument"})
		return
	}

	_, err = h.DB.Collection("appointments").UpdateOne(context.TODO(), bson.M{"_id": appointmentID}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

// CancelAppointment marks an appointment cancelled. Admins can cancel any
// appointment; patients only their own.
func (h *Handler) CancelAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID", "code": "invalid-argument"})
		return
	}

	collection := h.DB.Collection("appointments")

	var apt models.Appointment
	err = collection.FindOne(context.TODO(), bson.M{"_id": appointmentID}).Decode(&apt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if !c.GetBool("isAdmin") {
		userIDHex, _ := c.Get("userID")
		if apt.PatientID.Hex() != userIDHex.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied.", "code": "permission-denied"})
			return
		}
	}

	_, err = collection.UpdateOne(context.TODO(), bson.M{"_id": appointmentID}, bson.M{"$set": bson.M{"status": models.AppointmentCancelled}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	// Find patient details for the cancellation SMS
	var patient models.User
	err = h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": apt.PatientID}).Decode(&patient)
	if err == nil {
		apt.Status = models.AppointmentCancelled
		h.NotificationSvc.SendAppointmentConfirmationSMS(&patient, &apt)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

// DeleteAppointment removes an appointment document entirely (admin only).
func (h *Handler) DeleteAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID", "code": "invalid-argument"})
		return
	}

	result, err := h.DB.Collection("appointments").DeleteOne(context.TODO(), bson.M{"_id": appointmentID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
