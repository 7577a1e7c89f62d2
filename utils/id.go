package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// NewSessionID generates an identifier for one practice attempt. A uuid
// fragment plus a random suffix is unique enough within a page session; no
// global uniqueness is required.
func NewSessionID() string {
	fragment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("sess-%s-%04x", fragment, rand.Intn(0x10000))
}
