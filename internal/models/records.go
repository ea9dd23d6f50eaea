package models

type Allergy struct {
	ID     int64  `db:"id"      json:"id"`
	UserID int64  `db:"user_id" json:"userId"`
	Name   string `db:"name"    json:"name"`
}

type Medicine struct {
	ID              int64  `db:"id"               json:"id"`
	Name            string `db:"name"             json:"name"`
	Description     string `db:"description"      json:"description"`
	TakingFrequency string `db:"taking_frequency" json:"taking_frequency"`
}

type Institution struct {
	ID                 int64  `db:"id"                   json:"id"`
	Name               string `db:"name"                 json:"name"`
	PhoneNumber        string `db:"phone_number"         json:"phone_number"`
	AddressStreet      string `db:"address_street"       json:"address_street"`
	AddressHouseNumber string `db:"address_house_number" json:"address_house_number"`
	AddressPostcode    string `db:"address_postcode"     json:"address_postcode"`
	AddressCity        string `db:"address_city"         json:"address_city"`
	AddressCountry     string `db:"address_country"      json:"address_country"`
}

type Prescription struct {
	ID              int64   `db:"id"                json:"id"`
	DoctorID        int64   `db:"doctor_id"         json:"doctorId"`
	PatientID       int64   `db:"patient_id"        json:"patientId"`
	MedicineID      int64   `db:"medicine_id"       json:"medicineId"`
	Description     string  `db:"description"       json:"description"`
	TakingFrequency string  `db:"taking_frequency"  json:"medicine_taking_frequency"`
	AttachmentURL   *string `db:"attachment_url"    json:"attachment_url,omitempty"`
}
