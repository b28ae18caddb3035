package request_models

// Request bodies are form-encoded key/value pairs, matching the frontend
// this API serves.

type TripForm struct {
	Title    string `form:"title" binding:"required"`
	IsActive bool   `form:"is_active"`
}
