// Package qrcode renders order tracking QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"dabeli/config"
	"dabeli/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize        = 256
	defaultTrackingURL = "http://localhost:3000/track/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	trackingBaseURL      string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", defaultTrackingURL
	if qc := cfg.QRCode; qc != nil {
		if qc.Size > 0 {
			size = qc.Size
		}
		if qc.ErrorCorrectionLevel != "" {
			level = qc.ErrorCorrectionLevel
		}
		if qc.TrackingBaseURL != "" {
			baseURL = qc.TrackingBaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		trackingBaseURL:      baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// TrackingURL is the public page a scanned code opens.
func (s *qrcodeService) TrackingURL(phone string) string {
	base := s.trackingBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base + url.PathEscape(phone)
}

// GenerateTrackingQR renders a PNG QR code for the tracking page of phone.
func (s *qrcodeService) GenerateTrackingQR(phone string) ([]byte, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, errors.New("phone is required")
	}

	qrCode, err := qrcode.New(s.TrackingURL(phone), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
