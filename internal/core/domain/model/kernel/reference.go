package kernel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Reference number prefixes used across the console and the directory service.
const (
	orderNumberPrefix    = "ORD-"
	trackingNumberPrefix = "TRK-"
)

// NewOrderNumber generates a short human-facing order number of the form
// "ORD-XXXXXXXX". The suffix is the first eight hex digits of a random UUID,
// uppercased. Order numbers are assigned once at creation time and are the
// identifier customers see and search by.
func NewOrderNumber() string {
	return newReference(orderNumberPrefix)
}

// NewTrackingNumber generates a tracking number of the form "TRK-XXXXXXXX".
// Tracking numbers are assigned by the directory service when a carrier
// accepts an order.
func NewTrackingNumber() string {
	return newReference(trackingNumberPrefix)
}

func newReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s%s", prefix, strings.ToUpper(raw[:8]))
}
