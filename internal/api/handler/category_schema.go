package handler

// errorResponse documents the standard error envelope in swagger annotations.
type errorResponse struct {
	Code   string   `json:"code"`
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// messageResponse is returned by operations that have no entity payload.
type messageResponse struct {
	Message string `json:"message"`
}

type categoryCreateRequest struct {
	Title string `json:"title" validate:"required,min=3,max=60"`
}

type categoryUpdateRequest struct {
	ID    int    `json:"id"`
	Title string `json:"title" validate:"required,min=3,max=60"`
}
