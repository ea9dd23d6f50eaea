package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrCardNotFound   = errors.New("card not found")

	// ErrVerificationPinExpired covers both a missing pin row and one
	// older than the verification window.
	ErrVerificationPinExpired = errors.New("verification pin expired")

	// ErrPinMismatch is returned when a submitted pin does not match
	// the stored one (verification pin or card pin).
	ErrPinMismatch = errors.New("pin mismatch")

	// ErrAmbiguousCard signals several card rows sharing one uid,
	// which is a store integrity problem.
	ErrAmbiguousCard = errors.New("duplicate card uid")

	// ErrNoDoctorChosen is returned when a card is scanned at a device
	// no doctor has chosen yet.
	ErrNoDoctorChosen = errors.New("no doctor chosen on device")
)
