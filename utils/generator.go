package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const passwordLength = 12

// GenerateUsername builds a login name from the student's name plus a
// 4-digit suffix, e.g. "janedoe4821".
func GenerateUsername(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%s%d", base, 1000+seededRand.Intn(9000))
}

// GeneratePassword returns a random one-time password. It is handed to
// the administrator exactly once; only the bcrypt hash is stored.
func GeneratePassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:passwordLength]
}
