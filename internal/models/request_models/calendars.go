package request_models

// Dt is a plain date, "2006-01-02".
type CalendarForm struct {
	Dt string `form:"dt" binding:"required"`
}
