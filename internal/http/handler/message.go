package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the uniform JSON envelope for every webhook endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`  // created entry or entry list
	Error   string      `json:"error,omitempty"` // failure reason (if any)
}
