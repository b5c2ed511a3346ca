package model

// Classification is the outcome of the company/type classifier for one
// document. Empty fields mean "not detected"; there is no error state.
type Classification struct {
	Type    *ReceiptType
	Company string
}

// HasCompany reports whether a company was detected.
func (c Classification) HasCompany() bool {
	return c.Company != ""
}
