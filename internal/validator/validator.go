package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinValue       = "must be greater than or equal to %s"
	ErrMaxValue       = "must be less than or equal to %s"
	ErrLessThan       = "must be less than %s"
	ErrAlpha          = "must contain only letters"
	ErrReleaseDate    = "cannot be more than one year in the future"
	ErrDefaultInvalid = "is invalid"
)

// MaxReleaseDays is how far past today a release date may be.
const MaxReleaseDays = 365

var now = time.Now

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validator.RegisterValidation("release_date", validateReleaseDate)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

// decimalValue exposes decimals to the numeric tags (gte, lt, ...) as float64.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	return d.InexactFloat64()
}

func validateReleaseDate(fl validator.FieldLevel) bool {
	var date time.Time

	switch v := fl.Field().Interface().(type) {
	case openapi_types.Date:
		date = v.Time
	case time.Time:
		date = v
	default:
		return false
	}

	return !ReleaseDateTooFar(date)
}

// ReleaseDateTooFar reports whether date is more than MaxReleaseDays after today (UTC).
func ReleaseDateTooFar(date time.Time) bool {
	today := now().UTC().Truncate(24 * time.Hour)
	limit := today.AddDate(0, 0, MaxReleaseDays)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return day.After(limit)
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "lt":
		return fmt.Sprintf(ErrLessThan, err.Param())
	case "alpha":
		return ErrAlpha
	case "release_date":
		return ErrReleaseDate
	default:
		return ErrDefaultInvalid
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
