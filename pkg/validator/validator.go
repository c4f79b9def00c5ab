package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Report field names as their json tags so the client can match
	// errors to form inputs
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// FieldMessages folds validation errors into a field -> message map for
// inline form reporting.
func FieldMessages(errs []*ErrorResponse) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.Tag {
		case "required":
			fields[e.FailedField] = "is required"
		case "gte":
			fields[e.FailedField] = "must not be negative"
		case "gt":
			fields[e.FailedField] = "must be greater than " + e.Value
		default:
			fields[e.FailedField] = "failed on '" + e.Tag + "'"
		}
	}
	return fields
}
