package models

// BusinessDay holds the opening hours for a single weekday.
type BusinessDay struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BankDetails holds the gym's payout account information shown on invoices.
type BankDetails struct {
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	IFSC          string `json:"ifsc"`
}

// GymProfile is the singleton business profile. It always exists; on a fresh
// install it is seeded with the default profile and afterwards only updated.
type GymProfile struct {
	Name          string                 `json:"name"`
	Logo          string                 `json:"logo,omitempty"`
	Address       string                 `json:"address"`
	City          string                 `json:"city"`
	State         string                 `json:"state"`
	Zip           string                 `json:"zip"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	Description   string                 `json:"description,omitempty"`
	Website       string                 `json:"website,omitempty"`
	BusinessHours map[string]BusinessDay `json:"businessHours"`
	BankDetails   BankDetails            `json:"bankDetails"`
}

// BankDetailsPatch updates individual bank fields without clobbering siblings.
type BankDetailsPatch struct {
	AccountHolder *string `json:"accountHolder"`
	AccountNumber *string `json:"accountNumber"`
	BankName      *string `json:"bankName"`
	IFSC          *string `json:"ifsc"`
}

// GymProfilePatch is a partial update of the gym profile. Nil fields are left
// untouched; BusinessHours entries are merged per weekday and BankDetails is
// merged field by field rather than replaced.
type GymProfilePatch struct {
	Name          *string                `json:"name"`
	Logo          *string                `json:"logo"`
	Address       *string                `json:"address"`
	City          *string                `json:"city"`
	State         *string                `json:"state"`
	Zip           *string                `json:"zip"`
	Phone         *string                `json:"phone"`
	Email         *string                `json:"email"`
	Description   *string                `json:"description"`
	Website       *string                `json:"website"`
	BusinessHours map[string]BusinessDay `json:"businessHours"`
	BankDetails   *BankDetailsPatch      `json:"bankDetails"`
}
