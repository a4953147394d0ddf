package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotAssigned  = errors.New("order has no assigned driver")
	ErrOrderTerminal     = errors.New("order is in a terminal status")
	ErrOrderInProgress   = errors.New("order is already in progress")
	ErrTripComplete      = errors.New("trip is already complete")
	ErrNotOrderCustomer  = errors.New("order belongs to another customer")
	ErrNotAssignedDriver = errors.New("order is assigned to another driver")
	ErrAlreadyAssigned   = errors.New("order is already assigned")
)
