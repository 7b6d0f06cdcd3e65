package models

import "time"

// ConsentRecord holds the visitor's cookie-category choices. Necessary is
// always true and not user-togglable; the record is overwritten wholesale on
// every accept/reject/save action.
type ConsentRecord struct {
	Necessary   bool      `json:"necessary"`
	Analytics   bool      `json:"analytics"`
	Marketing   bool      `json:"marketing"`
	Preferences bool      `json:"preferences"`
	Timestamp   time.Time `json:"timestamp"`
}
