package db

const allergyListQ = `
SELECT a.id, a.user_id, a.name
FROM allergies a
ORDER BY a.id
`

const allergyGetQ = `
SELECT a.id, a.user_id, a.name
FROM allergies a
WHERE a.id = $1
`

const allergyCreateQ = `
INSERT INTO allergies (user_id, name)
VALUES ($1, $2)
RETURNING id
`

const allergyDeleteQ = `
DELETE FROM allergies
WHERE id = $1
`

const medicineListQ = `
SELECT m.id, m.name, m.description, m.taking_frequency
FROM medicines m
ORDER BY m.id
`

const medicineGetQ = `
SELECT m.id, m.name, m.description, m.taking_frequency
FROM medicines m
WHERE m.id = $1
`

const medicineCreateQ = `
INSERT INTO medicines (name, description, taking_frequency)
VALUES ($1, $2, $3)
RETURNING id
`

const medicineDeleteQ = `
DELETE FROM medicines
WHERE id = $1
`

const institutionListQ = `
SELECT
	i.id, i.name, i.phone_number,
	i.address_street, i.address_house_number, i.address_postcode,
	i.address_city, i.address_country
FROM institutions i
ORDER BY i.id
`

const institutionGetQ = `
SELECT
	i.id, i.name, i.phone_number,
	i.address_street, i.address_house_number, i.address_postcode,
	i.address_city, i.address_country
FROM institutions i
WHERE i.id = $1
`

const institutionCreateQ = `
INSERT INTO institutions (
	name, phone_number,
	address_street, address_house_number, address_postcode,
	address_city, address_country
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

const institutionDeleteQ = `
DELETE FROM institutions
WHERE id = $1
`

const prescriptionListQ = `
SELECT
	p.id, p.doctor_id, p.patient_id, p.medicine_id,
	p.description, p.taking_frequency, p.attachment_url
FROM prescriptions p
ORDER BY p.id
`

const prescriptionGetQ = `
SELECT
	p.id, p.doctor_id, p.patient_id, p.medicine_id,
	p.description, p.taking_frequency, p.attachment_url
FROM prescriptions p
WHERE p.id = $1
`

const prescriptionListByPatientQ = `
SELECT
	p.id, p.doctor_id, p.patient_id, p.medicine_id,
	p.description, p.taking_frequency, p.attachment_url
FROM prescriptions p
WHERE p.patient_id = $1
ORDER BY p.id
`

const prescriptionCreateQ = `
INSERT INTO prescriptions (doctor_id, patient_id, medicine_id, description, taking_frequency)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

const prescriptionSetAttachmentQ = `
UPDATE prescriptions
SET attachment_url = $1
WHERE id = $2
`

const prescriptionDeleteQ = `
DELETE FROM prescriptions
WHERE id = $1
`
