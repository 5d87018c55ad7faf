package request_models

type CreateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Discoverable bool   `json:"discoverable"`
}

// CreateGoalRequest targets either an existing event by id or an inline new
// event; exactly one of the two must be set.
type CreateGoalRequest struct {
	EventID         string              `json:"event_id,omitempty"`
	NewEvent        *CreateEventRequest `json:"new_event,omitempty"`
	WeeklyFrequency int                 `json:"weekly_frequency"`
	AvgSessionHours float64             `json:"avg_session_hours"`
}

type ShareGoalRequest struct {
	Email string `json:"email" binding:"required,email"`
}
