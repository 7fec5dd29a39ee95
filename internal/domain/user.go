package domain

import "time"

type User struct {
	UUID       string     `json:"uuid"`
	Email      string     `json:"email"`
	Password   string     `json:"-"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	DOB        *time.Time `json:"dob,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	ProfileURL string     `json:"profile_url,omitempty"`
	Level      string     `json:"level"`
	Points     int64      `json:"points"`
	FCMToken   string     `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserUpdate carries the profile fields a user may change. Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Gender    *string
	DOB       *time.Time
	Password  *string
}
