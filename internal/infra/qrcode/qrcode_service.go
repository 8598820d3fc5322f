package qrcode

import (
	"encoding/json"

	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	checkInType = "added_vehicle_checkin"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// checkInData is the JSON document encoded in a check-in QR code
type checkInData struct {
	RequestID string `json:"request_id"`
	VehicleID string `json:"vehicle_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCheckInQR renders a PNG QR code carrying the request and vehicle ids
func (s *qrcodeService) GenerateCheckInQR(requestID, vehicleID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(checkInData{
		RequestID: requestID.String(),
		VehicleID: vehicleID.String(),
		Type:      checkInType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInQR decodes the JSON content of a check-in QR code
func (s *qrcodeService) ParseCheckInQR(qrData string) (*service.CheckInPayload, error) {
	var data checkInData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != checkInType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	requestID, err := uuid.Parse(data.RequestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse request ID")
	}

	vehicleID, err := uuid.Parse(data.VehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse vehicle ID")
	}

	return &service.CheckInPayload{RequestID: requestID, VehicleID: vehicleID}, nil
}
