package models

// TokenResponse is returned by POST /login and POST /register.
type TokenResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UsersResponse wraps the user listing returned by GET /users.
type UsersResponse struct {
	Users []Profile `json:"users"`
}

// UserResponse wraps a single profile returned by GET /users/{username}.
type UserResponse struct {
	User User `json:"user"`
}

// MessagesResponse wraps the message feeds returned by
// GET /users/{username}/to and GET /users/{username}/from.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// MessageResponse wraps a single message returned by the message endpoints.
type MessageResponse struct {
	Message Message `json:"message"`
}

// ReadResponse wraps the receipt returned by POST /messages/{id}/read.
type ReadResponse struct {
	Message ReadReceipt `json:"message"`
}

// ErrorResponse is the envelope produced by the centralized error translator
// for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the human-readable message and the HTTP status of a
// failed request.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
