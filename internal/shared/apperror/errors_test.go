package apperror

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

var errSample = New(KindNotFound, "SAMPLE_NOT_FOUND", "Sample not found")

func TestWrapKeepsIdentity(t *testing.T) {
	cause := errors.New("no rows")
	wrapped := errSample.Wrap(cause)

	assert.ErrorIs(t, wrapped, errSample)
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, errSample.Err, "sentinel must not be mutated")
	assert.Equal(t, "[SAMPLE_NOT_FOUND] Sample not found: no rows", wrapped.Error())
}

func TestIsDistinguishesCodes(t *testing.T) {
	other := New(KindNotFound, "OTHER_NOT_FOUND", "Other not found")
	assert.NotErrorIs(t, errSample, other)
	assert.NotErrorIs(t, errSample, errors.New("[SAMPLE_NOT_FOUND] Sample not found"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("x: %w", errSample)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindValidation, KindOf(InvalidRequest("bad id")))
}

func TestValidationCarriesFieldErrors(t *testing.T) {
	fieldErrs := validation.Errors{"name": errors.New("cannot be blank")}
	err := Validation(fieldErrs)

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, fieldErrs, err.Details)
	assert.ErrorIs(t, err, InvalidRequest("anything"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "dependency", KindDependency.String())
	assert.Equal(t, "internal", Kind(99).String())
}

func TestWithDetailsLeavesSentinelUntouched(t *testing.T) {
	err := errSample.WithDetails(map[string]any{"ids": []int64{1}})

	assert.ErrorIs(t, err, errSample)
	assert.NotNil(t, err.Details)
	assert.Nil(t, errSample.Details)
}
