package payment

// Type discriminates how the buyer pays.
type Type string

const (
	TypeAutomatic Type = "automatic"
	TypeManual    Type = "manual"
	TypeCOD       Type = "cod"
)

// Selection is the checkout-session payment choice. Method and Channel are
// only meaningful for automatic payments; they are ignored for cod.
type Selection struct {
	Type    Type   `json:"type"`
	Method  string `json:"method,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// Validate surfaces an invalid selection to the caller instead of panicking.
func (s Selection) Validate() error {
	switch s.Type {
	case TypeAutomatic:
		if s.Method == "" {
			return ErrMethodRequired
		}
	case TypeManual, TypeCOD:
		// no method needed
	default:
		return ErrUnknownType
	}
	return nil
}

// Numeric transaction status codes as stored with an order. These track the
// payment lifecycle, not fulfillment.
const (
	CodePending   = 0
	CodePaid      = 1
	CodeCompleted = 2
	CodeDenied    = -1
	CodeCanceled  = -2
	CodeExpired   = -3
)

// CodeFromOutcome maps the gateway's outcome vocabulary to a numeric status
// code. Deny, cancel and expire intentionally collapse to cancellation codes;
// downstream only distinguishes cancelled, not why.
func CodeFromOutcome(outcome string) int {
	switch outcome {
	case "settlement", "capture":
		return CodePaid
	case "deny":
		return CodeDenied
	case "cancel":
		return CodeCanceled
	case "expire":
		return CodeExpired
	case "pending":
		return CodePending
	default:
		return CodePending
	}
}

// TransactionItem is one order line sent to the gateway.
type TransactionItem struct {
	ProductID uint   `json:"product_id"`
	VariantID *uint  `json:"product_variant_id,omitempty"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type SubmitRequest struct {
	ExternalID    string
	Amount        int
	CustomerName  string
	CustomerEmail string
	Selection     Selection
	Items         []TransactionItem
}

type SubmitResponse struct {
	ExternalID  string `json:"external_id"`
	StatusCode  int    `json:"status_code"`
	Outcome     string `json:"outcome"`
	RedirectURL string `json:"redirect_url,omitempty"`
	PaymentCode string `json:"payment_code,omitempty"`
}

// Notification is the webhook payload the gateway POSTs on status changes.
type Notification struct {
	ExternalID  string `json:"order_id"`
	Outcome     string `json:"transaction_status"`
	StatusCode  string `json:"status_code"`
	GrossAmount string `json:"gross_amount"`
	Signature   string `json:"signature_key"`
}
