// Package forms declares the request forms and their validation rules.
// Validation failures come back as a field -> message map for the templates;
// nothing reaches the store until the map is empty.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Input format of the pub_date datetime-local widget.
const PubDateLayout = "2006-01-02T15:04"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type PostForm struct {
	Title      string `form:"title" validate:"required,max=256"`
	Text       string `form:"text" validate:"required"`
	CategoryID uint   `form:"category_id" validate:"required"`
	LocationID uint   `form:"location_id"`
	PubDate    string `form:"pub_date" validate:"required"`
	Published  bool   `form:"published"`
	Image      string `form:"image" validate:"omitempty,url"`
}

// ParsedPubDate returns the submitted publication time. Future values are
// valid input: they defer publication.
func (f *PostForm) ParsedPubDate() (time.Time, error) {
	return time.ParseInLocation(PubDateLayout, f.PubDate, time.Local)
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

type ProfileForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
}

type SignupForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Validate runs the struct rules and flattens the result into per-field
// messages. An empty map means the form is good.
func Validate(form interface{}) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs["form"] = "Invalid input."
		return errs
	}

	for _, fe := range fieldErrors {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
