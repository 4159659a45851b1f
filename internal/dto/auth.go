package dto

// RegisterRequest defines the payload for registering with local credentials.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the payload for a local-credentials login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries either the ID token obtained client-side
// from Google sign-in, or the authorization code from the redirect flow.
// Exactly one of the two must be set.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken,omitempty"`
	Code    string `json:"code,omitempty"`
}

// LoginResponse carries the session JWT and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
