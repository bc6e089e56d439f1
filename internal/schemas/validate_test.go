package schemas

import (
	"errors"
	"testing"

	"github.com/podume/resume-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *types.ExtractionResult {
	return &types.ExtractionResult{
		FlatText:   "John Smith\nEngineer",
		Structured: types.NewStructuredResume(),
		Metadata: types.ExtractionMetadata{
			PageCount:        1,
			ExtractionMethod: types.MethodText,
			Confidence:       0.3,
		},
	}
}

func TestValidateExtractionResult_Valid(t *testing.T) {
	assert.NoError(t, ValidateExtractionResult(validResult()))
}

func TestValidateExtractionResult_EmptyNameRejected(t *testing.T) {
	result := validResult()
	result.Structured.Name = ""

	err := ValidateExtractionResult(result)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Errors[0].Field, "name")
}

func TestValidateExtractionResult_ConfidenceOutOfRange(t *testing.T) {
	result := validResult()
	result.Metadata.Confidence = 1.5

	err := ValidateExtractionResult(result)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateExtractionResult_UnknownMethodRejected(t *testing.T) {
	result := validResult()
	result.Metadata.ExtractionMethod = "telepathy"

	err := ValidateExtractionResult(result)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString("{not json", "{}")
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
