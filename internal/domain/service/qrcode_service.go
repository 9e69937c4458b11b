package service

// QRCodeService defines the interface for reservation check-in QR codes
type QRCodeService interface {
	// GenerateCheckInQR renders a PNG QR code that identifies the reservation at the kiosk.
	GenerateCheckInQR(reservationUID string) ([]byte, error)

	// ParseCheckInQR extracts the reservation uid from scanned QR data.
	ParseCheckInQR(qrData string) (string, error)
}
