package password

import (
	"crypto/rand"
	"math/big"
)

// charset is the full alphanumeric set used for temporary passwords.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TempLength is the length of generated temporary passwords.
const TempLength = 12

// Generate returns a cryptographically random string of n characters
// drawn uniformly from the alphanumeric charset.
func Generate(n int) (string, error) {
	max := big.NewInt(int64(len(charset)))
	out := make([]byte, n)

	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[idx.Int64()]
	}

	return string(out), nil
}
