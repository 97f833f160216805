package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestLicensePermits(t *testing.T) {
	tests := []struct {
		license LicenseClass
		vehicle VehicleType
		want    bool
	}{
		{LicenseStandard, SmallTruck, true},
		{LicenseStandard, MidTruck, false},
		{LicenseStandard, LargeTruck, false},
		{LicenseMedium, SmallTruck, true},
		{LicenseMedium, MidTruck, true},
		{LicenseMedium, LargeTruck, false},
		{LicenseLarge, SmallTruck, true},
		{LicenseLarge, MidTruck, true},
		{LicenseLarge, LargeTruck, true},
		{LicenseClass("Bicycle"), SmallTruck, false},
	}

	for _, tt := range tests {
		if got := tt.license.Permits(tt.vehicle); got != tt.want {
			t.Errorf("%s.Permits(%s) = %v, want %v", tt.license, tt.vehicle, got, tt.want)
		}
	}
}

func TestEligibilityIsMonotonic(t *testing.T) {
	classes := LicenseClasses()
	for i := 1; i < len(classes); i++ {
		lower, _ := EligibleVehicles(classes[i-1])
		for _, v := range lower {
			if !classes[i].Permits(v) {
				t.Fatalf("%s permits %s but %s does not", classes[i-1], v, classes[i])
			}
		}
	}
}

func TestEligibleVehiclesReturnsCopy(t *testing.T) {
	vs, ok := EligibleVehicles(LicenseStandard)
	if !ok {
		t.Fatalf("EligibleVehicles(%s) not found", LicenseStandard)
	}
	vs[0] = LargeTruck

	if LicenseStandard.Permits(LargeTruck) {
		t.Fatalf("mutating the returned slice changed the eligibility table")
	}

	if _, ok := EligibleVehicles(LicenseClass("")); ok {
		t.Fatalf("EligibleVehicles(\"\") reported ok for unknown class")
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	var err error = fmt.Errorf("add assignment: %w", &ValidationError{Field: "driver", Reason: "must not be empty"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("errors.Is(%v, ErrValidation) = false", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("validation error matched ErrNotFound")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "driver" {
		t.Fatalf("errors.As field = %v, want driver", ve)
	}

	err = fmt.Errorf("reorder: %w", &NotFoundError{ID: "9"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("errors.Is(%v, ErrNotFound) = false", err)
	}
}

func TestEnumsValid(t *testing.T) {
	if VehicleType("Van").Valid() {
		t.Errorf("Van should not be a valid vehicle type")
	}
	if !MidTruck.Valid() {
		t.Errorf("Mid-truck should be valid")
	}
	if CargoType("Frozen").Valid() {
		t.Errorf("Frozen should not be a valid cargo type")
	}
	if !CargoChilled.Valid() {
		t.Errorf("Chilled should be valid")
	}
	if !(Assignment{AIHint: "x"}).Annotated() || (Assignment{}).Annotated() {
		t.Errorf("Annotated should follow AIHint presence")
	}
}
