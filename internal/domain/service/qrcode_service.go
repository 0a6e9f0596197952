package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the public tracking page for phone
	GenerateTrackingQR(phone string) ([]byte, error)
}
