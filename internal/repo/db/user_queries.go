package db

const userColumns = `
	u.id,
	u.email,
	u.pesel,
	u.role,
	u.first_name,
	u.second_name,
	u.last_name,
	u.mother_name,
	u.father_name,
	u.gender,
	u.height,
	u.date_of_birth,
	u.place_of_birth,
	u.address,
	u.created_at,
	u.updated_at
`

const userGetByIDQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.id = $1
`

const userGetByPeselQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.pesel = $1
`

const userGetByEmailQ = `
SELECT ` + userColumns + `,
	u.password,
	u.last_token,
	u.last_refresh_token
FROM users u
WHERE u.email = $1
`

const userGetRoleQ = `
SELECT u.role
FROM users u
WHERE u.id = $1
`

const userCreateQ = `
INSERT INTO users (
	email, password, pesel, role,
	first_name, second_name, last_name, mother_name, father_name,
	gender, height, date_of_birth, place_of_birth, address
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT DO NOTHING
RETURNING id
`

const userSetLastTokensQ = `
UPDATE users
SET last_token = $1,
    last_refresh_token = $2
WHERE id = $3
`

// userSwapLastTokensQ replaces the stored pair only when the presented
// pair is still the last issued one. Zero rows affected means the
// presented pair is stale.
const userSwapLastTokensQ = `
UPDATE users
SET last_token = $1,
    last_refresh_token = $2
WHERE id = $3
  AND last_token = $4
  AND last_refresh_token = $5
`

const userDeleteQ = `
DELETE FROM users
WHERE id = $1
`
