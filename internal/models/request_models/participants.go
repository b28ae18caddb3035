package request_models

type ParticipantForm struct {
	Name string `form:"name" binding:"required"`
}
