package carta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentErrorMessage(t *testing.T) {
	cause := errors.New("zip corrupto")

	err := NewDocumentError("parse", "plantilla.docx", cause)
	assert.Equal(t, "document error during parse of 'plantilla.docx': zip corrupto", err.Error())
	assert.ErrorIs(t, err, cause)

	err = NewDocumentError("read", "", cause)
	assert.Equal(t, "document error during read: zip corrupto", err.Error())

	err = NewDocumentError("open", "plantilla.docx", nil)
	assert.Equal(t, "document error during open of 'plantilla.docx'", err.Error())
}

func TestGenerationErrorMessage(t *testing.T) {
	cause := errors.New("fallo interno")
	err := NewGenerationError("marshal", cause)

	assert.Equal(t, "generation failed during marshal: fallo interno", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsGenerationError(err))
}

func TestValidationErrorMessage(t *testing.T) {
	single := &ValidationError{Issues: []ValidationIssue{
		{Field: "Nombre_Cliente", Message: "required field is empty"},
	}}
	assert.Equal(t, "validation error: Nombre_Cliente - required field is empty", single.Error())

	multi := &ValidationError{Issues: []ValidationIssue{
		{Field: "CP", Message: "required field is empty"},
		{Field: "Ciudad_Oficina", Message: "required field is empty"},
	}}
	assert.Contains(t, multi.Error(), "2 validation issues:")
	assert.Contains(t, multi.Error(), "CP: required field is empty")
}

func TestRecoverError(t *testing.T) {
	cause := errors.New("pánico original")
	err := RecoverError(cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	err = RecoverError("mensaje de pánico")
	assert.Contains(t, err.Error(), "mensaje de pánico")

	err = RecoverError(42)
	assert.Contains(t, err.Error(), "42")
}

func TestErrorTypePredicates(t *testing.T) {
	assert.True(t, IsTemplateError(NewTemplateError("mal formada")))
	assert.True(t, IsDocumentError(NewDocumentError("parse", "", nil)))
	assert.True(t, IsGenerationError(NewGenerationError("render", nil)))
	assert.True(t, IsValidationError(&ValidationError{}))

	plain := errors.New("otro error")
	assert.False(t, IsTemplateError(plain))
	assert.False(t, IsDocumentError(plain))
	assert.False(t, IsGenerationError(plain))
	assert.False(t, IsValidationError(plain))
}
