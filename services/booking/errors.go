package booking

import "fmt"

// SlotTakenError signals the store rejected the booking because a paid
// booking already occupies the slot.
type SlotTakenError struct {
	SlotDate string
	SlotTime string
}

func (e SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s was booked by another customer", e.SlotDate, e.SlotTime)
}

// BookingNotFoundError signals an unknown booking id.
type BookingNotFoundError struct {
	BookingID string
}

func (e BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// InvalidTransitionError signals a status change the lifecycle table forbids.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// InvalidStatusError signals an unrecognized payment status string.
type InvalidStatusError struct {
	Status string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("unknown payment status %q", e.Status)
}
