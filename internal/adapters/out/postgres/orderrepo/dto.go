// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is generated by the database on insert; the status is stored
// as its lowercase string form so rows stay readable and the enum can grow
// without renumbering.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64  `gorm:"index;not null"`
	CleanerID    *int64 `gorm:"index"`
	Status       string `gorm:"type:varchar(16);index;not null"`
	PropertyType string
	Rooms        int
	Bathrooms    int
	CleaningType string
	Address      string `gorm:"not null"`
	Apartment    string
	City         string `gorm:"index"`
	Phone        string
	Latitude     *float64
	Longitude    *float64
	TotalPrice   float64
	CreatedAt    time.Time
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one add-on service line of an order.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	ServiceName string
	Quantity    int
	Price       float64
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	var latitude, longitude *float64
	if geo := details.Geo(); geo != nil {
		lat, lon := geo.Latitude(), geo.Longitude()
		latitude, longitude = &lat, &lon
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID(),
			ServiceName: item.ServiceName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerID:   aggregate.CustomerID(),
		CleanerID:    aggregate.Cleaner(),
		Status:       aggregate.Status().String(),
		PropertyType: details.PropertyType(),
		Rooms:        details.Rooms(),
		Bathrooms:    details.Bathrooms(),
		CleaningType: details.CleaningType(),
		Address:      details.Address(),
		Apartment:    details.Apartment(),
		City:         details.City(),
		Phone:        details.Phone(),
		Latitude:     latitude,
		Longitude:    longitude,
		TotalPrice:   aggregate.TotalPrice(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and cleaner assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	details, err := order.NewDetails(
		dto.PropertyType,
		dto.Rooms,
		dto.Bathrooms,
		dto.CleaningType,
		dto.Address,
		dto.Apartment,
		dto.City,
		dto.Phone,
		geo,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ServiceName, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.CleanerID,
		status,
		details,
		items,
		dto.TotalPrice,
		dto.CreatedAt,
	)
}
