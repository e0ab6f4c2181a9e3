package models

// AttendanceRecord is one attendance mark: a user either attended or missed
// one subject on one day. At most one record exists per (user, date, subject);
// re-marking overwrites the previous value.
type AttendanceRecord struct {
	// UserID is the student the record belongs to.
	UserID string `json:"-"`

	// Date is the class day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Subject is the class the record refers to.
	Subject string `json:"subject"`

	// Present is true if the user attended.
	Present bool `json:"present"`
}
