package domain

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrProgramNotFound    = errors.New("loyalty program not configured")
	ErrMembershipNotFound = errors.New("membership not found")

	ErrInvalidOrderItems  = errors.New("one or more order items are invalid for this restaurant")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrOrderCancelled     = errors.New("cannot pay a cancelled order")
	ErrPaidOrderImmutable = errors.New("cannot delete a paid order")
	ErrIllegalTransition  = errors.New("illegal order status transition")
)
