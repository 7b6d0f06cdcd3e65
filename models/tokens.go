package models

// TokenPair is issued by the backend after a successful reservation flow and
// kept in the visitor session for authenticated reads.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
