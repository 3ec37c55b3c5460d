package domain

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestValidateFieldProperties checks the contact rules against generated input.
func TestValidateFieldProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: names fail exactly when fewer than 2 code points remain after trimming
	properties.Property("name length rule", prop.ForAll(
		func(s string) bool {
			msg := ValidateField(FieldFirstName, s)
			if TrimmedLength(s) < MinNameLength {
				return msg == MsgFirstNameTooShort
			}
			return msg == ""
		},
		gen.OneGenOf(gen.AnyString(), gen.RegexMatch(`^\s{0,3}\PC{0,3}\s{0,3}$`)),
	))

	// Property: messages fail exactly when fewer than 10 code points remain after trimming
	properties.Property("message length rule", prop.ForAll(
		func(s string) bool {
			msg := ValidateField(FieldMessage, s)
			if TrimmedLength(s) < MinMessageLength {
				return msg == MsgMessageTooShort
			}
			return msg == ""
		},
		gen.OneGenOf(gen.AnyString(), gen.RegexMatch(`^\s{0,2}[a-z ]{8,12}\s{0,2}$`)),
	))

	// Property: an accepted email has exactly one '@' and a '.' after it
	properties.Property("accepted email shape", prop.ForAll(
		func(s string) bool {
			if ValidateField(FieldEmail, s) != "" {
				return true
			}
			if strings.Count(s, "@") != 1 {
				return false
			}
			domainPart := s[strings.Index(s, "@")+1:]
			return strings.Contains(domainPart, ".")
		},
		gen.OneGenOf(
			gen.AnyString(),
			gen.RegexMatch(`^[a-z.@]{1,12}$`),
			gen.RegexMatch(`^[a-z]{1,6}@[a-z]{1,6}\.[a-z]{2,4}$`),
		),
	))

	// Property: well-formed addresses are always accepted
	properties.Property("well-formed email accepted", prop.ForAll(
		func(s string) bool {
			return ValidateField(FieldEmail, s) == ""
		},
		gen.RegexMatch(`^[a-z0-9]{1,8}@[a-z0-9]{1,8}\.[a-z]{2,6}$`),
	))

	// Property: project types outside the closed set are rejected like empty input
	properties.Property("project type membership", prop.ForAll(
		func(s string) bool {
			msg := ValidateField(FieldProjectType, s)
			if ProjectType(s).IsValid() {
				return msg == ""
			}
			return msg == MsgProjectTypeEmpty
		},
		gen.OneGenOf(gen.AnyString(), gen.OneConstOf("consulting", "security", "other", "", " cloud")),
	))

	// Property: validation is a pure function of its input
	properties.Property("validation is idempotent", prop.ForAll(
		func(s string) bool {
			for _, f := range ContactFields {
				if ValidateField(f, s) != ValidateField(f, s) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	// Property: company is always valid
	properties.Property("company has no rule", prop.ForAll(
		func(s string) bool {
			return ValidateField(FieldCompany, s) == ""
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
