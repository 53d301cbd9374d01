package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/charm/internal/errors"
	"github.com/vango-dev/charm/pkg/project"
)

// Validate checks the configuration against its schema.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeConfigInvalid).WithDetail("configuration is nil")
	}
	if err := project.Validator().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError maps the first validator failure to a charm error.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	fe := ves[0]
	field := fieldName(fe)
	detail := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())

	code := errors.CodeConfigInvalid
	switch field {
	case "prefix":
		code = errors.CodeInvalidPrefix
	case "suffix":
		code = errors.CodeInvalidSuffix
	}
	return errors.New(code).WithDetail(detail).Wrap(err)
}

// fieldName renders a validator namespace like "Config.Icons.S3.Bucket"
// as "icons.s3.bucket".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
