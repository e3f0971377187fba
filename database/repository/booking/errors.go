package bookingRepo

import "errors"

// ErrDuplicateSlot is returned when the partial unique index on
// (slot_date, slot_time) rejects a paid booking for an occupied slot.
var ErrDuplicateSlot = errors.New("a paid booking already exists for this slot")
