package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrNoPlaceData          = errors.New("no place data available")
	ErrNoPlacesInState      = errors.New("no places in resolved state")
	ErrDatabaseError        = errors.New("database error")
	ErrArrangerUnavailable  = errors.New("arranger unavailable")
	ErrArrangerBadResponse  = errors.New("arranger returned unusable plan")
	ErrUnknownTransportCity = errors.New("unknown transport city")
)
