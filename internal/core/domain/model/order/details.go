package order

import (
	"errors"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	// ErrDetailsAreNotConstructed is returned when using Details not created via NewDetails.
	ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails constructor")
	// ErrAddressIsRequired is returned when the order address text is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Details carries the customer-supplied description of the cleaning job:
// what kind of property is cleaned, how big it is, and where to go.
//
// Details is an immutable value object. The address text is required; the
// geographic coordinate is optional and only present when the customer picked
// a point on the map.
type Details struct { //nolint:recvcheck //using for validation
	propertyType string
	rooms        int
	bathrooms    int
	cleaningType string
	address      string
	apartment    string
	city         string
	phone        string
	geo          *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewDetails creates validated order details.
// The address must be non-empty; rooms and bathrooms must not be negative;
// geo, when supplied, must be a properly constructed GeoPoint.
func NewDetails(
	propertyType string,
	rooms int,
	bathrooms int,
	cleaningType string,
	address string,
	apartment string,
	city string,
	phone string,
	geo *kernel.GeoPoint,
) (Details, error) {
	details := Details{
		propertyType: propertyType,
		cleaningType: cleaningType,
		apartment:    apartment,
		city:         city,
		phone:        phone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		details.setAddress(address),
		details.setRooms(rooms),
		details.setBathrooms(bathrooms),
		details.setGeo(geo),
	); err != nil {
		return Details{}, err
	}

	return details, nil
}

// Validate ensures the Details instance was created through NewDetails.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// PropertyType returns the property classification (apartment, private house).
func (d Details) PropertyType() string {
	return d.propertyType
}

// Rooms returns the number of rooms to clean.
func (d Details) Rooms() int {
	return d.rooms
}

// Bathrooms returns the number of bathrooms to clean.
func (d Details) Bathrooms() int {
	return d.bathrooms
}

// CleaningType returns the cleaning classification (standard, deep).
func (d Details) CleaningType() string {
	return d.cleaningType
}

// Address returns the textual order address.
func (d Details) Address() string {
	return d.address
}

// Apartment returns the optional apartment number.
func (d Details) Apartment() string {
	return d.apartment
}

// City returns the optional city name.
func (d Details) City() string {
	return d.city
}

// Phone returns the optional contact phone.
func (d Details) Phone() string {
	return d.phone
}

// Geo returns the optional geographic coordinate of the address.
// Returns nil when the customer did not pick a map point.
func (d Details) Geo() *kernel.GeoPoint {
	return d.geo
}

func (d *Details) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	d.address = address
	return nil
}

func (d *Details) setRooms(rooms int) error {
	if rooms < 0 {
		return errs.NewValueIsInvalidError("rooms")
	}
	d.rooms = rooms
	return nil
}

func (d *Details) setBathrooms(bathrooms int) error {
	if bathrooms < 0 {
		return errs.NewValueIsInvalidError("bathrooms")
	}
	d.bathrooms = bathrooms
	return nil
}

func (d *Details) setGeo(geo *kernel.GeoPoint) error {
	if geo != nil {
		if err := geo.Validate(); err != nil {
			return err
		}
	}
	d.geo = geo
	return nil
}
