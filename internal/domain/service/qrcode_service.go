package service

// QRCodeService renders QR codes.
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
