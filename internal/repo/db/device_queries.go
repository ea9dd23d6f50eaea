package db

const deviceGetByIDQ = `
SELECT d.id, d.pin, d.last_user, d.created_at
FROM devices d
WHERE d.id = $1
`

const deviceCreateQ = `
INSERT INTO devices (pin)
VALUES ($1)
RETURNING id
`

const deviceDeleteQ = `
DELETE FROM devices
WHERE id = $1
`

const deviceSetLastUserQ = `
UPDATE devices
SET last_user = $1
WHERE id = $2
`

// devicePinUpsertQ keeps at most one live verification pin per device:
// issuing overwrites the previous value and restarts the expiry window.
const devicePinUpsertQ = `
INSERT INTO device_verification_pins (device_id, pin, issued_at)
VALUES ($1, $2, now())
ON CONFLICT (device_id)
DO UPDATE SET pin = EXCLUDED.pin, issued_at = EXCLUDED.issued_at
`

const devicePinGetQ = `
SELECT p.device_id, p.pin, p.issued_at
FROM device_verification_pins p
WHERE p.device_id = $1
`

// deviceUserLinkQ is a conditional insert: the unique constraint on
// (user_id, device_id) makes duplicate links impossible even under
// concurrent submissions.
const deviceUserLinkQ = `
INSERT INTO device_users (user_id, device_id)
VALUES ($1, $2)
ON CONFLICT (user_id, device_id) DO NOTHING
`

const deviceUserUnlinkQ = `
DELETE FROM device_users
WHERE user_id = $1 AND device_id = $2
`

const cardGetByUIDQ = `
SELECT c.id, c.uid, c.pin, c.user_id
FROM cards c
WHERE c.uid = $1
`
