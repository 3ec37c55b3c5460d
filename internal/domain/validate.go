package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Validation messages shown next to the contact form inputs.
const (
	MsgFirstNameTooShort = "First name must be at least 2 characters"
	MsgLastNameTooShort  = "Last name must be at least 2 characters"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgProjectTypeEmpty  = "Please select a project type"
	MsgMessageTooShort   = "Message must be at least 10 characters"
)

// Minimum trimmed lengths, in code points.
const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// notEmailChar matches what may not appear in any part of an address:
// whitespace (including Unicode spaces) and '@'.
const notEmailChar = `[^\s\v\p{Z}\x{FEFF}@]`

// contactEmailRegex accepts exactly one '@' with a dot somewhere after it
// and no whitespace anywhere.
var contactEmailRegex = regexp.MustCompile(`^` + notEmailChar + `+@` + notEmailChar + `+\.` + notEmailChar + `+$`)

var validate = NewValidator()

// NewValidator returns a validator with the contact rules registered and
// field errors reported under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers the contact form rules on a validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_min", TrimmedMin)
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("project_type", ValidProjectType)
}

// TrimmedMin validates that a string has at least Param() code points once
// surrounding whitespace is removed.
func TrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return TrimmedLength(fl.Field().String()) >= min
}

// ContactEmail validates the simple single-@ address shape.
func ContactEmail(fl validator.FieldLevel) bool {
	return contactEmailRegex.MatchString(fl.Field().String())
}

// ValidProjectType validates membership in the closed project type set.
func ValidProjectType(fl validator.FieldLevel) bool {
	return ProjectType(fl.Field().String()).IsValid()
}

// TrimmedLength counts the code points of s after trimming surrounding
// whitespace and normalizing to NFC.
func TrimmedLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(strings.TrimSpace(s)))
}

// ValidateField checks a single contact field and returns the message to
// show, or "" when the value is acceptable. It has no side effects.
func ValidateField(field ContactField, value string) string {
	switch field {
	case FieldFirstName:
		if validate.Var(value, "trimmed_min=2") != nil {
			return MsgFirstNameTooShort
		}
	case FieldLastName:
		if validate.Var(value, "trimmed_min=2") != nil {
			return MsgLastNameTooShort
		}
	case FieldEmail:
		if validate.Var(value, "contact_email") != nil {
			return MsgEmailInvalid
		}
	case FieldProjectType:
		if validate.Var(value, "project_type") != nil {
			return MsgProjectTypeEmpty
		}
	case FieldMessage:
		if validate.Var(value, "trimmed_min=10") != nil {
			return MsgMessageTooShort
		}
	}
	return ""
}

// CheckLimits rejects submissions whose fields exceed the stored sizes.
// It returns nil when every field fits.
func CheckLimits(op string, s ContactSubmission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Internal(err, op, "failed to check submission limits")
	}

	ve := &ValidationError{Op: op, Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = fmt.Sprintf("Must be at most %s characters", fe.Param())
	}
	return ve
}

var maxLengths = func() map[ContactField]int {
	m := make(map[ContactField]int)
	t := reflect.TypeOf(ContactSubmission{})
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		for _, rule := range strings.Split(fld.Tag.Get("validate"), ",") {
			if v, ok := strings.CutPrefix(rule, "max="); ok {
				if n, err := strconv.Atoi(v); err == nil {
					m[ContactField(name)] = n
				}
			}
		}
	}
	return m
}()

// MaxLength returns the size limit of field in code points, or 0 when the
// field is unbounded.
func MaxLength(field ContactField) int {
	return maxLengths[field]
}
