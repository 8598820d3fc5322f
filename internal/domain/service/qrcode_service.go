package service

import (
	"github.com/google/uuid"
)

// CheckInPayload is what a request's check-in QR code encodes.
type CheckInPayload struct {
	RequestID uuid.UUID
	VehicleID uuid.UUID
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR generates a PNG QR code identifying a request at a service centre
	GenerateCheckInQR(requestID, vehicleID uuid.UUID) ([]byte, error)

	// ParseCheckInQR parses QR code data back into the request and vehicle ids
	ParseCheckInQR(qrData string) (*CheckInPayload, error)
}
