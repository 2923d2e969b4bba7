package carta

// Typed errors for template and document handling. Binding misses and
// numeric-filter parse failures are not represented here: those resolve
// silently during rewriting and never become errors.

import (
	"fmt"
	"strings"
)

// TemplateError reports a problem with the template itself.
type TemplateError struct {
	Message string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: %s", e.Message)
}

// NewTemplateError creates a new template error.
func NewTemplateError(message string) error {
	return &TemplateError{Message: message}
}

// DocumentError reports a failure during a document operation such as
// loading, parsing or serializing.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{Operation: operation, Path: path, Cause: cause}
}

// GenerationError is the single failure signal of a generation run. When it
// is returned, no partial artifact was produced.
type GenerationError struct {
	Stage string
	Cause error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("generation failed during %s", e.Stage)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NewGenerationError creates a new generation error.
func NewGenerationError(stage string, cause error) error {
	return &GenerationError{Stage: stage, Cause: cause}
}

// ValidationIssue is a single validation problem.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError collects the validation problems of a request.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}
	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	parts := []string{fmt.Sprintf("%d validation issues:", len(e.Issues))}
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// RecoverError converts a panic recovery value to an error.
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return fmt.Errorf("panic recovered: %w", v)
	case string:
		return fmt.Errorf("panic recovered: %s", v)
	default:
		return fmt.Errorf("panic recovered: %v", v)
	}
}

// IsTemplateError checks if an error is a template error.
func IsTemplateError(err error) bool {
	_, ok := err.(*TemplateError)
	return ok
}

// IsDocumentError checks if an error is a document error.
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}

// IsGenerationError checks if an error is a generation error.
func IsGenerationError(err error) bool {
	_, ok := err.(*GenerationError)
	return ok
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
