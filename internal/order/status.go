package order

// Status is the user-facing order status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// StatusFromCode maps a numeric transaction status code to a display status.
// The gateway has no "shipped" code; shipped is only ever set through the
// fulfillment path. Unknown or absent codes read as pending, the least
// alarming state, since a missing final status is the normal transient case.
func StatusFromCode(code *int) Status {
	if code == nil {
		return StatusPending
	}

	switch *code {
	case 0:
		return StatusPending
	case 1:
		return StatusProcessing
	case 2:
		return StatusDelivered
	case -1, -2, -3:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Status resolves the effective display status: fulfillment wins when set,
// otherwise the payment status code is mapped.
func (o *Order) Status() Status {
	if o.Fulfillment != nil {
		return *o.Fulfillment
	}
	return StatusFromCode(&o.StatusCode)
}
