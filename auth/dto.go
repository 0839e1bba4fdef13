package auth

// LoginRequest is the login payload. Username lookup is case-sensitive.
type LoginRequest struct {
	Username string `json:"username" example:"mluukkai"`
	Password string `json:"password" example:"salainen"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Username string `json:"username" example:"mluukkai"`
	Name     string `json:"name,omitempty" example:"Matti Luukkainen"`
}
