package dto

type EmailAndPasswordRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	Token        string `json:"token"         validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshResponse struct {
	NewToken        string `json:"new_token"`
	NewRefreshToken string `json:"new_refresh_token"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
