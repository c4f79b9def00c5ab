package promptpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors cross-checked against the reference promptpay-qr generator.
func TestPayloadVectors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		amount float64
		want   string
	}{
		{
			name:   "static phone with dashes",
			target: "000-000-0000",
			want:   "00020101021129370016A000000677010111011300660000000005802TH530376463048956",
		},
		{
			name:   "dynamic phone with amount",
			target: "0899999999",
			amount: 4.22,
			want:   "00020101021229370016A000000677010111011300668999999995802TH530376454044.2263049DF5",
		},
		{
			name:   "national id",
			target: "1234567890123",
			want:   "00020101021129370016A000000677010111021312345678901235802TH53037646304EC40",
		},
		{
			name:   "whole-baht amount keeps two decimals",
			target: "0812345678",
			amount: 100,
			want:   "00020101021229370016A000000677010111011300668123456785802TH53037645406100.006304BB8A",
		},
		{
			name:   "amount with satang",
			target: "0891234567",
			amount: 1249.75,
			want:   "00020101021229370016A000000677010111011300668912345675802TH530376454071249.756304726A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Payload(tt.target, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadStaticVsDynamic(t *testing.T) {
	static, err := Payload("0899999999", 0)
	require.NoError(t, err)
	dynamic, err := Payload("0899999999", 10)
	require.NoError(t, err)

	assert.Contains(t, static, "010211")
	assert.Contains(t, dynamic, "010212")
	assert.NotContains(t, static, "5405")
}

func TestPayloadInvalidTarget(t *testing.T) {
	_, err := Payload("not-a-number", 10)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCRC16KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE check value
	assert.Equal(t, uint16(0x29B1), crc16("123456789"))
}

func TestQRImageIsPNG(t *testing.T) {
	payload, err := Payload("0899999999", 120.50)
	require.NoError(t, err)

	png, err := QRImage(payload, 256)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
