package request

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d)(?=.*[^A-Za-z\d]).{8,}$`
	dobLayout            = "2006-01-02"
)

var (
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter, 1 number and 1 symbol")
	errInvalidDOB      = errors.New("must be a date in YYYY-MM-DD format")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	phoneExp    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	genders     = []interface{}{"male", "female", "other"}
)

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender,omitempty"`
	Phone     string `json:"phone,omitempty"`
	DOB       string `json:"dob,omitempty" format:"YYYY-MM-DD"`
}

// Fields exposes the body for RequireBody.
func (req *SignupRequest) Fields() map[string]string {
	return map[string]string{
		"email":      req.Email,
		"password":   req.Password,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}
}

func (req *SignupRequest) Validate() error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(checkPassword)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Gender, validation.In(genders...)),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
		validation.Field(&req.DOB, validation.By(checkDOB)),
	)
}

// ParsedDOB returns nil when no date of birth was sent.
func (req *SignupRequest) ParsedDOB() *time.Time {
	return parseDOB(req.DOB)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Fields() map[string]string {
	return map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}
}

func (req *LoginRequest) Validate() error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

func checkPassword(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := passwordExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPassword
	}
	return nil
}

func checkDOB(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	if _, err := time.Parse(dobLayout, s); err != nil {
		return errInvalidDOB
	}
	return nil
}

func parseDOB(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(dobLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
