package request_models

type CreateActivityTypeRequest struct {
	Name string `json:"name" binding:"required"`
}
