package models

// Credentials is the request body of POST /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the request body of POST /register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// SendMessageRequest is the request body of POST /messages.
// The sender is taken from the authenticated identity, never from the body.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}
