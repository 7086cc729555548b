package types

// Credentials is the request body shared by register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
