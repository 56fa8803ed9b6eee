package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For gates: the name of the profile (e.g., "vpn-list")
	FieldPath string // Dot-notation field path (e.g., "general.fetch_timeout_seconds")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report TOML field names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate validates the entire configuration and returns all validation errors
func (c *Config) Validate() error {
	var validationErrors ValidationErrors

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	if len(c.Gates) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "gate",
			Message:   "configuration must contain at least one gate",
		})
	} else {
		validationErrors = append(validationErrors, c.validateGates()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateGates() ValidationErrors {
	var validationErrors ValidationErrors

	// Track duplicates
	seenNames := make(map[string]bool)
	seenOutputs := make(map[string]bool)

	for i, gate := range c.Gates {
		itemName := gate.Name
		if itemName == "" {
			itemName = fmt.Sprintf("gate[%d]", i)
		}

		if err := validate.Struct(gate); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("gate.%d", i), itemName)...)
		}

		if seenNames[gate.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate gate name: %s", gate.Name),
			})
		}
		seenNames[gate.Name] = true

		// Two gates writing the same file would clobber each other
		if gate.Output != "" {
			if seenOutputs[gate.Output] {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "output",
					Message:   fmt.Sprintf("duplicate output path: %s", gate.Output),
				})
			}
			seenOutputs[gate.Output] = true
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
