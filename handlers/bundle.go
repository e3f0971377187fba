package handlers

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Checkout *CheckoutHandler
	Booking  *BookingHandler
	Referral *ReferralHandler
	Creator  *CreatorHandler
	Upgrade  *UpgradeHandler
}
