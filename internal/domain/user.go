package domain

// User represents a registered account. Email is unique across all users; the
// password is stored only as a bcrypt hash and is never serialized.
type User struct {
	ID             string `json:"id" db:"id"`
	Nickname       string `json:"nickname" db:"nickname"`
	Email          string `json:"email" db:"email"`
	PasswordHash   string `json:"-" db:"password_hash"`
	ProfilePicture string `json:"profile_picture,omitempty" db:"profile_picture"`
}

// RegisterRequest defines the request body for account registration.
type RegisterRequest struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginRequest defines the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest defines the request body for profile updates. Nickname
// and ProfilePicture are pointers so that "field omitted" and "field present
// but empty" stay distinguishable: an omitted or empty nickname is ignored,
// while an explicit empty profile picture clears the stored one.
type UpdateProfileRequest struct {
	Nickname       *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,max=2048"`
}
