package request_models

type ActivityForm struct {
	Title string `form:"title" binding:"required"`
}
