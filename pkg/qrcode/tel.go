package qrcode

import "strings"

// TelURI converts a display phone number such as "+1 (555) 010-0199" to a
// RFC 3966 global number URI ("tel:+15550100199"). A leading '+' is kept;
// every other non-digit is dropped.
func TelURI(phone string) (string, error) {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	b.WriteString("tel:")
	if strings.HasPrefix(phone, "+") {
		b.WriteByte('+')
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			digits++
		}
	}
	if digits == 0 {
		return "", ErrInvalidPhone
	}
	return b.String(), nil
}

// GeneratePhone renders a QR code that dials phone when scanned.
func GeneratePhone(phone string, size int) ([]byte, error) {
	uri, err := TelURI(phone)
	if err != nil {
		return nil, err
	}
	return Generate(uri, size)
}
