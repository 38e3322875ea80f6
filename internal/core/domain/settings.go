package domain

// StoreSettings is the single-document store profile. The API pins its ID,
// so saving always upserts the same record.
type StoreSettings struct {
	ID           string `json:"_id,omitempty"`
	StoreName    string `json:"storeName"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}
