package httpx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"mediarec/internal/media"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("showtype", validateShowType)
	_ = validate.RegisterValidation("mediatype", validateMediaType)
}

func validateShowType(fl validator.FieldLevel) bool {
	_, ok := media.ParseShowType(fl.Field().String())
	return ok
}

func validateMediaType(fl validator.FieldLevel) bool {
	_, err := media.ParseMediaType(fl.Field().String())
	return err == nil
}

// ValidateStruct checks s against its validate tags and returns one detail
// per failing field, or nil.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, err := range verrs {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "showtype":
			message = fmt.Sprintf("%s must be Movie or TV Show", field)
		case "mediatype":
			message = fmt.Sprintf("%s must be Movie, TV Show or Book", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
