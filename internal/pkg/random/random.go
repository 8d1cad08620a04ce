package random

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const (
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits     = "0123456789"
)

// Hex returns n lowercase hex characters.
func Hex(n int) (string, error) {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:n], nil
}

// UpperAlnum returns n characters from [A-Z0-9].
func UpperAlnum(n int) (string, error) {
	return fromAlphabet(upperAlnum, n)
}

// Digits returns n decimal digits, leading zeros allowed.
func Digits(n int) (string, error) {
	return fromAlphabet(digits, n)
}

func fromAlphabet(alphabet string, n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
