package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rentflow/backend/internal/interfaces/http/dto"
)

var (
	siretRegex   = regexp.MustCompile(`^[0-9]{9}$|^[0-9]{14}$`)
	zipCodeRegex = regexp.MustCompile(`^[0-9A-Za-z]{5}$`)
)

// SetupValidator configures the gin validator: JSON tag names in errors and
// the onboarding tags siret, frdate and zipcode.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	return registerOnboardingValidations(v)
}

func registerOnboardingValidations(v *validator.Validate) error {
	return errors.Join(
		v.RegisterValidation("siret", func(fl validator.FieldLevel) bool {
			return siretRegex.MatchString(strings.TrimSpace(fl.Field().String()))
		}),
		v.RegisterValidation("frdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("02/01/2006", fl.Field().String())
			return err == nil
		}),
		v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
			return zipCodeRegex.MatchString(fl.Field().String())
		}),
	)
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError writes a validation error response. Malformed
// payloads that never reached the validator are reported as BAD_REQUEST.
func HandleValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeBadRequest, "Malformed request body", GetRequestID(c)))
		return
	}
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		if e.Kind() == reflect.Slice {
			return "Select at least " + e.Param()
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "dive":
		return "Invalid value"
	case "siret":
		return "Please enter a valid 9-digit SIREN or 14-digit SIRET number."
	case "frdate":
		return "Date must be in DD/MM/YYYY format"
	case "zipcode":
		return "Zip code must be 5 characters."
	case "required_if":
		return "This field is required"
	default:
		return "Invalid value"
	}
}
