package domain

import "slices"

// Driver qualification level gating which vehicle types may be assigned.
type LicenseClass string

const (
	LicenseStandard LicenseClass = "Standard"
	LicenseMedium   LicenseClass = "Medium"
	LicenseLarge    LicenseClass = "Large"
)

// Each class must permit a superset of the class below it.
var eligibility = map[LicenseClass][]VehicleType{
	LicenseStandard: {SmallTruck},
	LicenseMedium:   {SmallTruck, MidTruck},
	LicenseLarge:    {SmallTruck, MidTruck, LargeTruck},
}

// Return the license classes ordered from lowest to highest.
func LicenseClasses() []LicenseClass {
	return []LicenseClass{LicenseStandard, LicenseMedium, LicenseLarge}
}

func (l LicenseClass) Valid() bool {
	_, ok := eligibility[l]
	return ok
}

// Return a copy of the vehicle types the license class permits.
// The second result is false for an unknown class.
func EligibleVehicles(l LicenseClass) ([]VehicleType, bool) {
	vs, ok := eligibility[l]
	if !ok {
		return nil, false
	}
	return slices.Clone(vs), true
}

// Report whether a holder of this license may drive the given vehicle type.
func (l LicenseClass) Permits(v VehicleType) bool {
	return slices.Contains(eligibility[l], v)
}
