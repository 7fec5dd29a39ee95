package response

import "github.com/danceapp/events-api/internal/domain"

type User struct {
	UUID       string `json:"uuid"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DOB        string `json:"dob,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	Level      string `json:"level"`
	Points     int64  `json:"points"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func NewUser(u domain.User) User {
	user := User{
		UUID:       u.UUID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Gender:     u.Gender,
		Phone:      u.Phone,
		ProfileURL: u.ProfileURL,
		Level:      u.Level,
		Points:     u.Points,
	}
	if u.DOB != nil {
		user.DOB = u.DOB.Format(dateLayout)
	}
	return user
}
