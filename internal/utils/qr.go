package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// PaymentQR encode l'URL de paiement Paynow en QR base64 prêt à mettre dans
// <img src="...">, pour le scan-to-pay mobile.
func PaymentQR(redirectURL string) (string, error) {
	png, err := qrcode.Encode(redirectURL, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
