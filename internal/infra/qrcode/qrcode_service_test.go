package qrcode

import (
	"testing"

	"dabeli/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level}})
			assert.Equal(t, tt.want, svc.(*qrcodeService).errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, "http://localhost:3000/track/9876543210", svc.TrackingURL("9876543210"))
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		TrackingBaseURL: "https://gracedabeli.example/track",
	}}).(*qrcodeService)

	assert.Equal(t, "https://gracedabeli.example/track/9876543210", svc.TrackingURL("9876543210"))
	assert.Equal(t, "https://gracedabeli.example/track/+91%2098765", svc.TrackingURL("+91 98765"))
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size}})

		qrBytes, err := svc.GenerateTrackingQR("9876543210")
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateTrackingQR_EmptyPhone(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateTrackingQR("  ")
	assert.Error(t, err)
}
