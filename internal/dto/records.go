package dto

type AddVisitRequest struct {
	Reason      string `json:"reason"      validate:"required"`
	Description string `json:"description"`
	DoctorID    int64  `json:"doctorId"    validate:"required"`
	PatientID   int64  `json:"patientId"   validate:"required"`
}

type AddAllergyRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Name   string `json:"name"   validate:"required"`
}

type AddMedicineRequest struct {
	Name            string `json:"name"              validate:"required"`
	Description     string `json:"description"       validate:"required"`
	TakingFrequency string `json:"taking_frequency"  validate:"required"`
}

type AddInstitutionRequest struct {
	Name               string `json:"name"                 validate:"required"`
	PhoneNumber        string `json:"phone_number"         validate:"required"`
	AddressStreet      string `json:"address_street"       validate:"required"`
	AddressHouseNumber string `json:"address_house_number" validate:"required"`
	AddressPostcode    string `json:"address_postcode"     validate:"required"`
	AddressCity        string `json:"address_city"         validate:"required"`
	AddressCountry     string `json:"address_country"      validate:"required"`
}

type AddPrescriptionRequest struct {
	DoctorID        int64  `json:"doctorId"                  validate:"required"`
	PatientID       int64  `json:"patientId"                 validate:"required"`
	MedicineID      int64  `json:"medicineId"                validate:"required"`
	Description     string `json:"description"               validate:"required"`
	TakingFrequency string `json:"medicine_taking_frequency" validate:"required"`
}
