package checkout

import (
	"sync"

	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/shipping"
)

// ShippingSelection is the courier option a user picked for the current
// checkout. Option is nil until a concrete service has been chosen.
type ShippingSelection struct {
	Courier string               `json:"courier"`
	Option  *shipping.CostOption `json:"option"`
}

// Session holds the in-progress checkout selections of a single user:
// destination, shipping choice, payment choice and applied vouchers.
// It lives in memory only; a submission consumes it.
type Session struct {
	mu sync.Mutex

	UserID     uint
	districtID string
	shipping   ShippingSelection
	payment    *payment.Selection
	voucherIDs []int
}

// SetDestination records the destination district. Changing the
// destination invalidates any previously chosen shipping option, since
// rates were quoted against the old district.
func (s *Session) SetDestination(districtID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.districtID != districtID {
		s.shipping = ShippingSelection{}
	}
	s.districtID = districtID
}

func (s *Session) Destination() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.districtID
}

func (s *Session) SetShipping(courier string, option *shipping.CostOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipping = ShippingSelection{Courier: courier, Option: option}
}

func (s *Session) ClearShipping() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipping = ShippingSelection{}
}

func (s *Session) Shipping() ShippingSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// SetPayment validates and records the payment selection. An invalid
// selection leaves the previous one untouched.
func (s *Session) SetPayment(sel payment.Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payment = &sel
	return nil
}

func (s *Session) Payment() *payment.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// AddVoucher applies a voucher id to the session. Adding an id that is
// already applied is a no-op.
func (s *Session) AddVoucher(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.voucherIDs {
		if v == id {
			return
		}
	}
	s.voucherIDs = append(s.voucherIDs, id)
}

func (s *Session) RemoveVoucher(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.voucherIDs {
		if v == id {
			s.voucherIDs = append(s.voucherIDs[:i], s.voucherIDs[i+1:]...)
			return
		}
	}
}

func (s *Session) Vouchers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.voucherIDs))
	copy(out, s.voucherIDs)
	return out
}

// SessionStore keeps one Session per authenticated user. It is injected
// into the checkout service so tests and the server can own separate
// instances.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uint]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uint]*Session)}
}

// Get returns the session for userID, creating an empty one on first use.
func (st *SessionStore) Get(userID uint) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[userID]
	if !ok {
		sess = &Session{UserID: userID}
		st.sessions[userID] = sess
	}
	return sess
}

// Clear drops the session for userID, typically after a submission.
func (st *SessionStore) Clear(userID uint) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
