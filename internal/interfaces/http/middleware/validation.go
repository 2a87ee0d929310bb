package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes binding errors name fields by their JSON key
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			switch name {
			case "-":
				return ""
			case "":
				continue
			default:
				return name
			}
		}
		return fld.Name
	})
}

// FormatValidationErrors turns a binding error into the error envelope.
// Rule violations and mistyped JSON values are reported per field; any other
// decode failure is answered without field details.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var fields []dto.ValidationDetail

	var ruleErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &ruleErrs):
		for _, fe := range ruleErrs {
			fields = append(fields, dto.ValidationDetail{Field: fe.Field(), Message: ruleMessage(fe)})
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields = append(fields, dto.ValidationDetail{
			Field:   typeErr.Field,
			Message: "Must be a " + jsonKind(typeErr.Type),
		})
	}

	if len(fields) == 0 {
		return dto.NewValidationErrorResponse("Invalid request body", requestID, nil)
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, fields)
}

// HandleValidationError answers a failed bind. Bodies cut off by BodyLimit
// get 413, everything else 400.
func HandleValidationError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		abortWithError(c, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
		return
	}
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, getRequestID(c)))
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

var ruleTemplates = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"uuid":     "Invalid UUID format",
	"url":      "Invalid URL format",
	"numeric":  "Must be numeric",
	"alpha":    "Must contain only letters",
	"alphanum": "Must be alphanumeric",
	"oneof":    "Must be one of: %s",
	"len":      "Must be exactly %s characters",
	"gte":      "Must be greater than or equal to %s",
	"lte":      "Must be less than or equal to %s",
	"gt":       "Must be greater than %s",
	"lt":       "Must be less than %s",
}

func ruleMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isText {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if isText {
			return "Must be at most " + fe.Param() + " characters"
		}
		return "Must be at most " + fe.Param()
	}
	tmpl, ok := ruleTemplates[fe.Tag()]
	if !ok {
		return "Invalid value"
	}
	return strings.Replace(tmpl, "%s", fe.Param(), 1)
}
