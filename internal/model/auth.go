package model

type LoginResponse struct {
	Message      string       `json:"message"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserSnapshot `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
