package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when attempting to use a
// Destination that was not created via NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination represents a carrier-addressable delivery destination.
// It is an immutable value object: a free-form street address plus the
// carrier's district, ward and province identifiers. Whether the
// district/ward pair actually exists under the province is only known to
// the carrier and is checked by the workflow through the carrier gateway,
// not here.
//
// Example:
//
//	dest, err := kernel.NewDestination("72 Le Thanh Ton", 1442, "20308", 202)
//	if err != nil {
//	    // handle validation error
//	}
type Destination struct { //nolint:recvcheck //using for validation
	address    string
	districtID int
	wardCode   string
	provinceID int

	guard guard.ConstructorGuard
}

// NewDestination creates a Destination with the given address and carrier
// location identifiers. The address and ward code must be non-empty and
// the district and province identifiers positive.
func NewDestination(address string, districtID int, wardCode string, provinceID int) (Destination, error) {
	if address == "" {
		return Destination{}, errs.NewValueIsRequiredError("address")
	}
	if districtID <= 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause("districtId",
			fmt.Errorf("%d is not a positive district identifier", districtID))
	}
	if wardCode == "" {
		return Destination{}, errs.NewValueIsRequiredError("wardCode")
	}
	if provinceID <= 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause("provinceId",
			fmt.Errorf("%d is not a positive province identifier", provinceID))
	}

	return Destination{
		address:    address,
		districtID: districtID,
		wardCode:   wardCode,
		provinceID: provinceID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Destination was created through NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Address returns the free-form street address.
func (d Destination) Address() string {
	return d.address
}

// DistrictID returns the carrier's district identifier.
func (d Destination) DistrictID() int {
	return d.districtID
}

// WardCode returns the carrier's ward code.
func (d Destination) WardCode() string {
	return d.wardCode
}

// ProvinceID returns the carrier's province identifier.
func (d Destination) ProvinceID() int {
	return d.provinceID
}

// IsEqual compares two destinations field by field.
func (d Destination) IsEqual(other Destination) bool {
	return d.address == other.address &&
		d.districtID == other.districtID &&
		d.wardCode == other.wardCode &&
		d.provinceID == other.provinceID
}

// String formats the destination for logs.
func (d Destination) String() string {
	return fmt.Sprintf("%s (district %d, ward %s, province %d)", d.address, d.districtID, d.wardCode, d.provinceID)
}
