package test

import "math/rand"

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a random alphanumeric string whose length is
// picked uniformly from [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += rand.Intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = asciiLetters[rand.Intn(len(asciiLetters))]
	}
	return string(b)
}
