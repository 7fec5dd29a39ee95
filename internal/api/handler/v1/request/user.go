package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/danceapp/events-api/internal/domain"
)

var errEmptyUpdate = errors.New("nothing to update")

// UpdateUserRequest changes only the fields that are present.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	DOB       *string `json:"dob,omitempty" format:"YYYY-MM-DD"`
	Password  *string `json:"password,omitempty"`
}

func (req *UpdateUserRequest) Validate() error {
	if req.FirstName == nil && req.LastName == nil && req.Phone == nil &&
		req.Gender == nil && req.DOB == nil && req.Password == nil {
		return errEmptyUpdate
	}

	if req.Gender != nil {
		g := strings.ToLower(strings.TrimSpace(*req.Gender))
		req.Gender = &g
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
		validation.Field(&req.Gender, validation.In(genders...)),
		validation.Field(&req.DOB, validation.By(indirect(checkDOB))),
		validation.Field(&req.Password, validation.NilOrNotEmpty, validation.By(indirect(checkPassword))),
	)
}

func (req *UpdateUserRequest) ToDomain() domain.UserUpdate {
	upd := domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Password:  req.Password,
	}
	if req.DOB != nil {
		upd.DOB = parseDOB(*req.DOB)
	}
	return upd
}

type FCMTokenRequest struct {
	FCMToken string `json:"fcm_token"`
}

func (req *FCMTokenRequest) Fields() map[string]string {
	return map[string]string{"fcm_token": req.FCMToken}
}

// indirect lets a string rule run on a *string field.
func indirect(rule validation.RuleFunc) validation.RuleFunc {
	return func(value interface{}) error {
		if p, ok := value.(*string); ok {
			if p == nil {
				return nil
			}
			return rule(*p)
		}
		return rule(value)
	}
}
