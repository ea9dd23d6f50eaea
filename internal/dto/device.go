package dto

type RegisterDeviceRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type DeviceLoginRequest struct {
	ID  int64  `json:"id"  validate:"required"`
	Pin string `json:"pin" validate:"required"`
}

type IssueVerificationPinRequest struct {
	DeviceID int64  `json:"deviceId" validate:"required"`
	Pin      string `json:"pin"      validate:"required"`
}

type DeviceUserRequest struct {
	UserID   int64  `json:"userId"   validate:"required"`
	DeviceID int64  `json:"deviceId" validate:"required"`
	Pin      string `json:"pin"`
}

type ChooseDeviceRequest struct {
	UserID   int64 `json:"userId"   validate:"required"`
	DeviceID int64 `json:"deviceId" validate:"required"`
}

type CardScanRequest struct {
	DeviceID int64  `json:"deviceId" validate:"required"`
	CardUID  string `json:"cardUid"  validate:"required"`
	CardPin  string `json:"cardPin"  validate:"required"`
}
