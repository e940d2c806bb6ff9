package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the error types below with errors.Is.
var (
	ErrInvalidSchema    = errors.New("airent-api: invalid schema")
	ErrMissingConfig    = errors.New("airent-api: invalid configuration")
	ErrGenerationFailed = errors.New("airent-api: generation failed")
)

// SchemaError reports an entity schema that breaks the loader contract.
// Its text reads "airent-api: schema User.email: message: cause".
type SchemaError struct {
	Entity  string
	Field   string // empty for entity-level errors
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	return format("schema", join(".", e.Entity, e.Field), e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error        { return e.Cause }
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError returns a SchemaError.
func NewSchemaError(entity, field, message string, cause error) *SchemaError {
	return &SchemaError{Entity: entity, Field: field, Message: message, Cause: cause}
}

// ConfigError reports an invalid config option or augmentation option.
type ConfigError struct {
	Option  string
	Value   any // offending value, if any
	Message string
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Value != nil {
		msg = fmt.Sprintf("%s (got %v)", msg, e.Value)
	}
	return format("config", e.Option, msg, nil)
}

func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError returns a ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError reports a failure while writing the files of an entity.
type GenerationError struct {
	Entity  string
	File    string // slash-separated, relative to the output root
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	return format("generate", join(" ", e.Entity, e.File), e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error        { return e.Cause }
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError returns a GenerationError.
func NewGenerationError(entity, file, message string, cause error) *GenerationError {
	return &GenerationError{Entity: entity, File: file, Message: message, Cause: cause}
}

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool { return isA[*SchemaError](err) }

// IsConfigError reports whether err wraps a ConfigError.
func IsConfigError(err error) bool { return isA[*ConfigError](err) }

// IsGenerationError reports whether err wraps a GenerationError.
func IsGenerationError(err error) bool { return isA[*GenerationError](err) }

func isA[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// format renders "airent-api: <stage> <subject>: <message>: <cause>",
// leaving out the empty parts.
func format(stage, subject, message string, cause error) string {
	parts := []string{join(" ", "airent-api: "+stage, subject)}
	if message != "" {
		parts = append(parts, message)
	}
	if cause != nil {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, ": ")
}

// join joins the non-empty elements with sep.
func join(sep string, elems ...string) string {
	var parts []string
	for _, e := range elems {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, sep)
}
