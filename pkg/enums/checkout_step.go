package enums

// CheckoutStep tracks progress through the checkout state machine. Steps only
// move forward; CheckoutStepSuccess is terminal.
type CheckoutStep string

const (
	CheckoutStepShipping CheckoutStep = "shipping"
	CheckoutStepPayment  CheckoutStep = "payment"
	CheckoutStepSuccess  CheckoutStep = "success"
)

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s CheckoutStep) IsTerminal() bool {
	return s == CheckoutStepSuccess
}
