package models

import "time"

// Role is the access tier assigned to a user. Tiers are kept as small
// integers for compatibility with the persisted schema.
type Role int

const (
	RolePatient Role = iota + 1
	RoleStaff
	RoleDoctor
	RoleAdmin
)

// OneOf reports whether r is a member of the given set.
func (r Role) OneOf(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `db:"id"             json:"id"`
	Email        string    `db:"email"          json:"email"`
	Password     string    `db:"password"       json:"-"`
	Pesel        string    `db:"pesel"          json:"pesel"`
	Role         Role      `db:"role"           json:"role"`
	FirstName    string    `db:"first_name"     json:"first_name"`
	SecondName   string    `db:"second_name"    json:"second_name"`
	LastName     string    `db:"last_name"      json:"last_name"`
	MotherName   string    `db:"mother_name"    json:"mother_name"`
	FatherName   string    `db:"father_name"    json:"father_name"`
	Gender       string    `db:"gender"         json:"gender"`
	Height       int       `db:"height"         json:"height"`
	DateOfBirth  time.Time `db:"date_of_birth"  json:"date_of_birth"`
	PlaceOfBirth string    `db:"place_of_birth" json:"place_of_birth"`
	Address      string    `db:"address"        json:"address"`

	// Last issued token pair. Only the most recently issued pair is
	// accepted by refresh, which keeps a single session per user.
	LastToken        string `db:"last_token"         json:"-"`
	LastRefreshToken string `db:"last_refresh_token" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
