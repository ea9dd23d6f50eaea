package db

const visitListQ = `
SELECT v.id, v.reason, v.description, v.doctor_id, v.patient_id, v.date
FROM visits v
ORDER BY v.date DESC
`

const visitListByPatientQ = `
SELECT v.id, v.reason, v.description, v.doctor_id, v.patient_id, v.date
FROM visits v
WHERE v.patient_id = $1
ORDER BY v.date DESC
`

// visitCreateQ relies on the unique index over
// (doctor_id, patient_id, day of date): a second visit for the same
// pair on the same calendar day inserts nothing.
const visitCreateQ = `
INSERT INTO visits (reason, description, doctor_id, patient_id, date)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT DO NOTHING
RETURNING id
`

const visitDeleteQ = `
DELETE FROM visits
WHERE id = $1
`
