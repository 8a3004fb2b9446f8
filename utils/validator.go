package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validations
	validate.RegisterValidation("lead_status", validateLeadStatus)
	validate.RegisterValidation("lead_source", validateLeadSource)

	// Register custom tag name function
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors formats validation errors for better readability
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, getValidationMessage(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

// getValidationMessage returns a user-friendly validation message
func getValidationMessage(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, e.Param())
	case "lead_status":
		return fmt.Sprintf("%s must be one of: New, Contacted, Qualified, Converted, Lost", field)
	case "lead_source":
		return fmt.Sprintf("%s must be one of: Website, Referral, Ad, Other", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Custom validation functions
func validateLeadStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	allowed := []string{"New", "Contacted", "Qualified", "Converted", "Lost"}

	for _, s := range allowed {
		if status == s {
			return true
		}
	}
	return false
}

func validateLeadSource(fl validator.FieldLevel) bool {
	source := fl.Field().String()
	allowed := []string{"Website", "Referral", "Ad", "Other"}

	for _, s := range allowed {
		if source == s {
			return true
		}
	}
	return false
}
