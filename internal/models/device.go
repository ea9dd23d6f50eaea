package models

import "time"

// Device is a physical check-in terminal. Pin is the static device
// credential used by the legacy device login, not the verification pin.
type Device struct {
	ID        int64     `db:"id"         json:"id"`
	Pin       string    `db:"pin"        json:"pin"`
	LastUser  *int64    `db:"last_user"  json:"last_user,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DeviceVerificationPin is the short-lived proof of physical presence
// at a device. At most one live pin exists per device; issuing a new
// one overwrites the previous value and timestamp.
type DeviceVerificationPin struct {
	DeviceID int64     `db:"device_id" json:"device_id"`
	Pin      string    `db:"pin"       json:"pin"`
	IssuedAt time.Time `db:"issued_at" json:"issued_at"`
}

// DeviceUser links a user account to a device once verification succeeds.
type DeviceUser struct {
	ID       int64 `db:"id"        json:"id"`
	UserID   int64 `db:"user_id"   json:"user_id"`
	DeviceID int64 `db:"device_id" json:"device_id"`
}

// Card is a physical check-in card owned by a patient.
type Card struct {
	ID     int64  `db:"id"      json:"id"`
	UID    string `db:"uid"     json:"uid"`
	Pin    string `db:"pin"     json:"-"`
	UserID int64  `db:"user_id" json:"user_id"`
}
