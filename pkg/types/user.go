package types

// UserAddress is the shipping address on the profile.
type UserAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// UserProfile is the single per-session user record. Updates replace the
// whole record; fields are never patched individually.
type UserProfile struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address UserAddress `json:"address"`
}
