package handlers

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Scheduling *SchedulingHandler
	Booking    *BookingHandler
	Provider   *ProviderHandler
}
