package util

import "fmt"

func BytesToUint64(b []byte) uint64 {
	return uint64(b[0])<<56 |
		uint64(b[1])<<48 |
		uint64(b[2])<<40 |
		uint64(b[3])<<32 |
		uint64(b[4])<<24 |
		uint64(b[5])<<16 |
		uint64(b[6])<<8 |
		uint64(b[7])
}

func Uint64ToBytes(value uint64) []byte {
	return []byte{
		byte(value >> 56),
		byte(value >> 48),
		byte(value >> 40),
		byte(value >> 32),
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
}

// StemPayloadExtract splits a stem mapper value into its class number and stem.
func StemPayloadExtract(value []byte) (uint64, string, error) {
	if len(value) < 8 {
		return 0, "", fmt.Errorf("stem payload too short (%d bytes)", len(value))
	}

	classNo := BytesToUint64(value[0:8])
	stem := string(value[8:])

	return classNo, stem, nil
}

func StemPayloadBuild(classNo uint64, stem string) []byte {
	payload := make([]byte, 8+len(stem))
	copy(payload[0:8], Uint64ToBytes(classNo))
	copy(payload[8:], stem)

	return payload
}
