package dto

import "time"

// APIResponse is the envelope for every JSON body the server returns
type APIResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"`
	Data      interface{}   `json:"data,omitempty"`
	Flash     *FlashMessage `json:"flash,omitempty"`
	Error     *ErrorDetail  `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// FlashMessage is a one-shot notice left by the previous request, e.g. after a redirect
type FlashMessage struct {
	Category string `json:"category"` // success, info, danger or secondary
	Message  string `json:"message"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewFailureResponse wraps an error detail in a failed envelope
func NewFailureResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// NewPageResponse wraps the view model of a page together with the pending flash, if any
func NewPageResponse(data interface{}, flash *FlashMessage) APIResponse {
	resp := NewSuccessResponse(data, "")
	resp.Flash = flash
	return resp
}
