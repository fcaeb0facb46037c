package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNumberPrefix = "BND"

// GenerateOrderNumber produces a human-readable order token: a date
// prefix plus a random suffix, e.g. BND-20260831-4F9A2C. Collisions are
// unlikely but possible, so callers retry on a uniqueness conflict.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, now.UTC().Format("20060102"), suffix)
}
