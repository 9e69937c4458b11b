// Package validator adapts go-playground/validator to echo and renders field errors.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	mobilePattern   = regexp.MustCompile(`^01([016789]?)-?([0-9]{3,4})-?([0-9]{4})$`)
	landlinePattern = regexp.MustCompile(`^0([0-9]{1,3})-?([0-9]{3,4})-?([0-9]{4})$`)
	namePattern     = regexp.MustCompile(`^[ㄱ-ㅎ가-힣a-z0-9-_]{2,10}$`)
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names and knows the
// mobile, phone, membername and password tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return landlinePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("membername", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password", validPassword)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// validPassword requires 8 to 16 non-space characters mixing a letter, a digit and a symbol.
func validPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 16 {
		return false
	}

	var letter, digit, symbol bool
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			return false
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	return letter && digit && symbol
}

// FieldErrors maps each failing field to a user-facing message.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fieldPath(fe)] = message(fe)
	}

	return details
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "반드시 값이 있어야 합니다."
	case "isdefault":
		return "null이어야 합니다."
	case "email":
		return "이메일 주소가 유효하지 않습니다."
	case "mobile", "phone":
		return "전화번호가 유효하지 않습니다."
	case "membername":
		return "이름은 특수문자를 제외한 2~10자리여야 합니다."
	case "password":
		return "비밀번호는 8~16자 영문 대 소문자, 숫자, 특수문자를 사용하세요."
	case "datetime":
		return "형식이 올바르지 않습니다: " + fe.Param()
	case "min":
		return "최소값은 " + fe.Param() + " 입니다."
	case "max":
		return "최대값은 " + fe.Param() + " 입니다."
	case "oneof":
		return "허용된 값: " + fe.Param()
	default:
		return "유효하지 않은 값입니다."
	}
}

// ParamError is a single field failure found outside struct validation, such as a
// missing query parameter.
type ParamError struct {
	Field   string
	Message string
}

func (e *ParamError) Error() string {
	return e.Field + ": " + e.Message
}

// Required reports a missing parameter.
func Required(field string) *ParamError {
	return &ParamError{Field: field, Message: "반드시 값이 있어야 합니다."}
}

// Invalid reports a malformed parameter.
func Invalid(field, message string) *ParamError {
	return &ParamError{Field: field, Message: message}
}
