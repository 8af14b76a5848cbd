// Package schemas validates resume documents against the canonical JSON Schema.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchemaJSON string

var (
	compileOnce  sync.Once
	resumeSchema *gojsonschema.Schema
	compileErr   error
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors compiling the embedded schema or parsing
// the candidate document.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func compiled() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		resumeSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchemaJSON))
	})
	if compileErr != nil {
		return nil, &SchemaLoadError{Message: "failed to compile resume schema", Cause: compileErr}
	}
	return resumeSchema, nil
}

// ValidateResume checks raw JSON against the resume document schema. It
// returns a *ValidationError listing every violation, a *SchemaLoadError when
// the input is not parseable JSON, or nil when the document conforms.
func ValidateResume(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{Message: "failed to parse document", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
