package domain

import "slices"

type VehicleType string

const (
	SmallTruck VehicleType = "Small-truck"
	MidTruck   VehicleType = "Mid-truck"
	LargeTruck VehicleType = "Large-truck"
)

// Return the closed vehicle type enumeration, smallest first.
func VehicleTypes() []VehicleType {
	return []VehicleType{SmallTruck, MidTruck, LargeTruck}
}

func (v VehicleType) Valid() bool {
	return slices.Contains(VehicleTypes(), v)
}

type CargoType string

const (
	CargoDry     CargoType = "Dry"
	CargoChilled CargoType = "Chilled"
)

func CargoTypes() []CargoType {
	return []CargoType{CargoDry, CargoChilled}
}

func (c CargoType) Valid() bool {
	return slices.Contains(CargoTypes(), c)
}
