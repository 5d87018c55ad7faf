package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ActivityTypeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}
