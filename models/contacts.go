package models

// Contacts is the business contact info shown on the contact page, owned by
// the backend.
type Contacts struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	MapURL       string `json:"map_url,omitempty"`
}
