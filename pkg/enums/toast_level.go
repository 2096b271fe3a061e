package enums

// ToastLevel is the severity of a user-facing notification.
type ToastLevel string

const (
	ToastLevelSuccess ToastLevel = "success"
	ToastLevelError   ToastLevel = "error"
	ToastLevelInfo    ToastLevel = "info"
)

// String implements fmt.Stringer.
func (l ToastLevel) String() string {
	return string(l)
}

// IsValid reports whether the value is a known ToastLevel.
func (l ToastLevel) IsValid() bool {
	switch l {
	case ToastLevelSuccess, ToastLevelError, ToastLevelInfo:
		return true
	}
	return false
}
