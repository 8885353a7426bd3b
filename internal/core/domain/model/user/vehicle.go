package user

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
// through NewVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// VehicleType enumerates the supported delivery vehicles.
type VehicleType int

const (
	// VehicleTypeUnknown catches uninitialized values.
	VehicleTypeUnknown VehicleType = iota
	// VehicleTypeBicycle needs no licence plate.
	VehicleTypeBicycle
	// VehicleTypeScooter is a motor scooter.
	VehicleTypeScooter
	// VehicleTypeMotorcycle is a motorcycle.
	VehicleTypeMotorcycle
	// VehicleTypeCar is a car.
	VehicleTypeCar
)

// String returns the human-readable name of the vehicle type.
func (t VehicleType) String() string {
	switch t {
	case VehicleTypeBicycle:
		return "Bicycle"
	case VehicleTypeScooter:
		return "Scooter"
	case VehicleTypeMotorcycle:
		return "Motorcycle"
	case VehicleTypeCar:
		return "Car"
	default:
		return "Unknown"
	}
}

// Validate checks that the VehicleType is one of the defined values.
func (t VehicleType) Validate() error {
	if t <= VehicleTypeUnknown || t > VehicleTypeCar {
		return errs.NewValueIsInvalidError("vehicle type")
	}
	return nil
}

// Vehicle is the immutable value object describing what a delivery person
// rides. Motorized vehicles require a licence plate; bicycles do not.
type Vehicle struct {
	vehicleType  VehicleType
	licensePlate string
	guard        guard.ConstructorGuard
}

// NewVehicle creates a vehicle. The licence plate is trimmed and required
// for every type except bicycle.
func NewVehicle(vehicleType VehicleType, licensePlate string) (Vehicle, error) {
	if err := vehicleType.Validate(); err != nil {
		return Vehicle{}, err
	}

	licensePlate = strings.TrimSpace(licensePlate)
	if licensePlate == "" && vehicleType != VehicleTypeBicycle {
		return Vehicle{}, errs.NewValueIsRequiredError("license plate")
	}

	return Vehicle{
		vehicleType:  vehicleType,
		licensePlate: licensePlate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Vehicle was created through the constructor.
func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Type returns the vehicle type.
func (v Vehicle) Type() VehicleType {
	return v.vehicleType
}

// LicensePlate returns the licence plate, empty for bicycles.
func (v Vehicle) LicensePlate() string {
	return v.licensePlate
}

// IsEqual compares two vehicles by type and plate.
func (v Vehicle) IsEqual(other Vehicle) bool {
	return v.vehicleType == other.vehicleType && v.licensePlate == other.licensePlate
}
