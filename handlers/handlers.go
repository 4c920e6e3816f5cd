package handlers

// HandlerBundle aggregates the handler groups passed to route registration.
type HandlerBundle struct {
	Auth      *AuthHandler
	Lawyer    *LawyerHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
}
