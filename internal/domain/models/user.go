package models

// User is the signed-in user record kept under the "user" key.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	UserType  string `json:"userType"`
	Phone     string `json:"phone,omitempty"`
	Photo     string `json:"photo,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Session is the user record plus the user type flag.
type Session struct {
	User     *User  `json:"user"`
	UserType string `json:"userType"`
}
