package httpapi

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// dateLayout is the wire format for dates of birth.
const dateLayout = "2006-01-02"

type signUpRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
	PhotoURL         string `json:"photoUrl"`
	DateOfBirth      string `json:"dateOfBirth"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

func (r signUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
		validation.Field(&r.PhotoURL, is.URL),
		validation.Field(&r.DateOfBirth, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.SecurityQuestion, validation.Required),
		validation.Field(&r.SecurityAnswer, validation.Required),
	)
}

func (r signUpRequest) dateOfBirth() time.Time {
	t, _ := time.Parse(dateLayout, r.DateOfBirth)
	return t
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type updatePasswordRequest struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r updatePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

type forgotPasswordRequest struct {
	Email            string `json:"email"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
	DateOfBirth      string `json:"dateOfBirth"`
	NewPassword      string `json:"newPassword"`
	ConfirmPassword  string `json:"confirmPassword"`
}

func (r forgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.SecurityQuestion, validation.Required),
		validation.Field(&r.SecurityAnswer, validation.Required),
		validation.Field(&r.DateOfBirth, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.NewPassword, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

func (r forgotPasswordRequest) dateOfBirth() time.Time {
	t, _ := time.Parse(dateLayout, r.DateOfBirth)
	return t
}
