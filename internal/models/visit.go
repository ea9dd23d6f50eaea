package models

import "time"

// Visit is a logged clinical encounter between a doctor and a patient.
// Card-scan visits are created with empty reason/description.
type Visit struct {
	ID          int64     `db:"id"          json:"id"`
	Reason      string    `db:"reason"      json:"reason"`
	Description string    `db:"description" json:"description"`
	DoctorID    int64     `db:"doctor_id"   json:"doctor_id"`
	PatientID   int64     `db:"patient_id"  json:"patient_id"`
	Date        time.Time `db:"date"        json:"date"`
}
