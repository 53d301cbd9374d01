package project

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// TokenTag is the validator tag for prefix and suffix tokens.
const TokenTag = "charm_token"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tokenPattern = regexp.MustCompile(`^[a-z0-9_-]*$`)
)

// Validator returns the shared validator with charm's custom tags registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation(TokenTag, func(fl validator.FieldLevel) bool {
			return tokenPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsToken reports whether s may be used as a prefix or suffix.
// The empty string is a valid token.
func IsToken(s string) bool {
	return Validator().Var(s, TokenTag) == nil
}
