// Package validation wires go-playground/validator with the signup rules and
// the localized messages returned to clients.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"recipehub/internal/optional"
)

const (
	userIDMinLen   = 10
	userIDMaxLen   = 20
	passwordMinLen = 10
)

// messages by tag, overridden per "Struct.Field.tag" below.
var messages = map[string]string{
	"userid_len":     "사용자 ID는 최소 10글자 이상, 20글자 이하이어야 합니다.",
	"userid_chars":   "사용자 ID는 알파벳 대소문자, 숫자로만 구성되어야 합니다.",
	"password_len":   "password는 최소 10글자 이상이어야 합니다.",
	"password_chars": "password는 알파벳 대소문자(a~z, A~Z), 숫자(0~9), 특수문자로만 구성되어야 합니다.",
	"email":          "올바른 형식의 이메일 주소여야 합니다",
	"notblank":       "공백일 수 없습니다",
	"required":       "공백일 수 없습니다",
}

var fieldMessages = map[string]string{
	"SigninRequest.UserID.notblank":     "아이디는 공백일 수 없습니다.",
	"SigninRequest.Password.notblank":   "비밀번호는 공백일 수 없습니다.",
	"PasswordRequest.Password.required": "password는 null이 될 수 없습니다.",
}

// Error carries every failed rule as a localized message.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterCustomTypeFunc(unwrapOptionalString, optional.Value[string]{})
	mustRegister(v, "userid_len", userIDLength)
	mustRegister(v, "userid_chars", userIDChars)
	mustRegister(v, "password_len", passwordLength)
	mustRegister(v, "password_chars", passwordChars)
	mustRegister(v, "notblank", notBlank)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate implements echo.Validator interface.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, messageFor(fe))
	}
	return &Error{Messages: msgs}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " 값이 올바르지 않습니다."
}

// unwrapOptionalString exposes a present value as *string and an absent one
// as a nil pointer, so "omitempty" skips absent fields but still checks "".
func unwrapOptionalString(field reflect.Value) interface{} {
	o, ok := field.Interface().(optional.Value[string])
	if !ok {
		return nil
	}
	if s, set := o.Get(); set {
		return &s
	}
	return (*string)(nil)
}

func userIDLength(fl validator.FieldLevel) bool {
	n := utf8.RuneCountInString(fl.Field().String())
	return n >= userIDMinLen && n <= userIDMaxLen
}

func userIDChars(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isASCIILetterOrDigit(r) {
			return false
		}
	}
	return true
}

func passwordLength(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) >= passwordMinLen
}

// passwordChars requires an upper, a lower, a digit and a special character
// and nothing outside those classes.
func passwordChars(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isASCIILetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
