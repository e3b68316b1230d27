// Package qrcode renders QR codes with github.com/skip2/go-qrcode.
//
// Generate returns PNG bytes and GenerateBase64Image a data URI. TelURI and
// GeneratePhone turn the business phone number into a scannable tel: link,
// which the site footer serves so mobile visitors can call directly.
//
//	png, err := qrcode.GeneratePhone("+1 (555) 010-0199", 0)
//
// Errors are sentinels (ErrEmptyContent, ErrInvalidPhone,
// ErrorFailedToGenerateQRCode) for use with errors.Is.
package qrcode
