package errs

import "errors"

var (
	// ErrCustomerNotFound is returned when a referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrOrderNotFound is returned when an order lookup by id matches nothing.
	ErrOrderNotFound = errors.New("order not found")

	// ErrServiceNotFound is returned by the gateway for an unknown service prefix.
	ErrServiceNotFound = errors.New("service not found")
)
