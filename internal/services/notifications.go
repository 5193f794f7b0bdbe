package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/harentsoaR/vaxicare-api/internal/models"
)

// NotificationService sends SMS confirmations for vaccination appointments.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendAppointmentConfirmationSMS notifies the patient about a booked or
// cancelled appointment. Failures are logged, never surfaced to the booking
// flow.
func (s *NotificationService) SendAppointmentConfirmationSMS(patient *models.User, apt *models.Appointment) {
	if patient.Phone == "" {
		log.Println("SMS not sent: patient has no phone number.")
		return
	}

	smsBody := fmt.Sprintf(
		"VaxiCare: %s appointment for %s at %s on %s (%s).",
		apt.Type,
		apt.PatientName,
		apt.LocationName,
		apt.DateTime.Format("Jan 2 at 3:04 PM"),
		apt.Status,
	)

	// Send in a goroutine so it doesn't block the API response
	go sendSmsWithTextbelt(patient.Phone, smsBody)
}

func sendSmsWithTextbelt(phone, message string) {
	// Textbelt free key allows 1 SMS per day. Get a paid key for more.
	textbeltKey := os.Getenv("TEXTBELT_API_KEY")

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     textbeltKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}
