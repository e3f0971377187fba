package reservation

import "fmt"

// SlotAlreadyBookedError signals that a paid booking occupies the slot.
type SlotAlreadyBookedError struct {
	SlotDate string
	SlotTime string
}

func (e SlotAlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %s %s is already booked", e.SlotDate, e.SlotTime)
}

// SlotReservedError signals that another customer holds the slot and their
// hold has not yet expired.
type SlotReservedError struct {
	SlotDate  string
	SlotTime  string
	ExpiresIn string
}

func (e SlotReservedError) Error() string {
	return fmt.Sprintf("slot %s %s is currently reserved by another checkout", e.SlotDate, e.SlotTime)
}

// MissingFieldError signals a required identifying field was not supplied.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
