package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contribution is one vendor's pledge toward a campaign. Contributions are
// owned by their campaign and are never addressed on their own.
// VendorName is copied from the caller's identity at write time and is
// display data only; it may drift from the vendor's current profile.
type Contribution struct {
	ID            uuid.UUID
	VendorID      string
	VendorName    string
	Quantity      decimal.Decimal
	ContributedAt time.Time
}

// NewContribution validates the pledge arguments and stamps the record with
// a fresh id and now in UTC.
func NewContribution(vendorID, vendorName string, qty decimal.Decimal, now time.Time) (Contribution, error) {
	if !qty.IsPositive() {
		return Contribution{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	if strings.TrimSpace(vendorID) == "" {
		return Contribution{}, fmt.Errorf("%w: vendor id is required", ErrInvalidArgument)
	}
	return Contribution{
		ID:            uuid.New(),
		VendorID:      vendorID,
		VendorName:    vendorName,
		Quantity:      qty,
		ContributedAt: now.UTC(),
	}, nil
}
