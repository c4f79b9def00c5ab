// Package promptpay builds EMVCo merchant-presented QR payloads for the
// Thai PromptPay scheme: a TLV string carrying the payee id and optional
// amount, terminated by a CRC-16/CCITT-FALSE checksum.
package promptpay

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	idPayloadFormat      = "00"
	idPOIMethod          = "01"
	idMerchantInfo       = "29"
	idCurrency           = "53"
	idAmount             = "54"
	idCountryCode        = "58"
	idCRC                = "63"
	merchantGUID         = "00"
	payloadFormatEMV     = "01"
	poiMethodStatic      = "11"
	poiMethodDynamic     = "12"
	guidPromptPay        = "A000000677010111"
	targetTypePhone      = "01"
	targetTypeNationalID = "02"
	targetTypeEWallet    = "03"
	currencyTHB          = "764"
	countryTH            = "TH"
)

var ErrInvalidTarget = errors.New("promptpay target must be a phone number, national id, or e-wallet id")

// Payload encodes the payee target and amount. An amount > 0 produces a
// dynamic (single-use) QR with the amount fixed to two decimals; amount 0
// produces a static QR. Callers must not request a QR for a non-positive
// checkout total; that guard lives at the payment boundary.
func Payload(target string, amount float64) (string, error) {
	digits := sanitize(target)
	if len(digits) < 9 {
		return "", ErrInvalidTarget
	}

	poi := poiMethodStatic
	if amount > 0 {
		poi = poiMethodDynamic
	}

	var b strings.Builder
	b.WriteString(tlv(idPayloadFormat, payloadFormatEMV))
	b.WriteString(tlv(idPOIMethod, poi))
	b.WriteString(tlv(idMerchantInfo,
		tlv(merchantGUID, guidPromptPay)+tlv(targetType(digits), formatTarget(digits))))
	b.WriteString(tlv(idCountryCode, countryTH))
	b.WriteString(tlv(idCurrency, currencyTHB))
	if amount > 0 {
		b.WriteString(tlv(idAmount, fmt.Sprintf("%.2f", amount)))
	}

	// The CRC covers everything up to and including its own tag and length
	data := b.String() + idCRC + "04"
	return data + fmt.Sprintf("%04X", crc16(data)), nil
}

// QRImage renders a payload as a PNG of size x size pixels.
func QRImage(payload string, size int) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, size)
}

func targetType(digits string) string {
	switch {
	case len(digits) >= 15:
		return targetTypeEWallet
	case len(digits) >= 13:
		return targetTypeNationalID
	default:
		return targetTypePhone
	}
}

// formatTarget normalizes phone numbers to the 13-digit 0066 form
// (leading zero replaced by the country code). National ids and e-wallet
// ids pass through as-is.
func formatTarget(digits string) string {
	if len(digits) >= 13 {
		return digits
	}
	padded := "0000000000000" + "66" + digits[1:]
	return padded[len(padded)-13:]
}

func sanitize(target string) string {
	var b strings.Builder
	for _, r := range target {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for _, ch := range []byte(data) {
		crc ^= uint16(ch) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
