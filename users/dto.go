package users

// NewUserRequest is the registration payload. Adult is a pointer so an
// omitted value can be told apart from an explicit false: an absent flag
// defaults to true, which is deliberate registry policy.
type NewUserRequest struct {
	Username string `json:"username" example:"mluukkai"`
	Name     string `json:"name,omitempty" example:"Matti Luukkainen"`
	Password string `json:"password" example:"salainen"`
	Adult    *bool  `json:"adult,omitempty" example:"true"`
}
