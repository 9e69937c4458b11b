package qrcode

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// checkInType marks payloads produced for kiosk check-in.
const checkInType = "check_in"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CheckInPayload is the JSON encoded in a check-in QR code
type CheckInPayload struct {
	ReservationUID string `json:"reservation_uid"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateCheckInQR renders the reservation's check-in code as PNG
func (s *qrcodeService) GenerateCheckInQR(reservationUID string) ([]byte, error) {
	if !validReservationUID(reservationUID) {
		return nil, fmt.Errorf("invalid reservation uid: %q", reservationUID)
	}

	jsonData, err := json.Marshal(CheckInPayload{
		ReservationUID: reservationUID,
		Type:           checkInType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCheckInQR parses scanned data and returns the reservation uid
func (s *qrcodeService) ParseCheckInQR(qrData string) (string, error) {
	var data CheckInPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != checkInType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if !validReservationUID(data.ReservationUID) {
		return "", fmt.Errorf("invalid reservation uid: %q", data.ReservationUID)
	}

	return data.ReservationUID, nil
}

// validReservationUID accepts the 32 hex character external id.
func validReservationUID(uid string) bool {
	if len(uid) != 32 {
		return false
	}
	_, err := hex.DecodeString(uid)

	return err == nil
}
