package domain

// CustomerInfo holds the checkout form fields. Free text, no format
// validation beyond non-emptiness.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Complete reports whether every field required for checkout is filled in.
func (c CustomerInfo) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Address != ""
}
