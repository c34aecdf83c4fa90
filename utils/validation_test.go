package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateFixture struct {
	Shop      string `json:"shop" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(validateFixture{Shop: "demo-shop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
	assert.NotContains(t, err.Error(), "StartDate")
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, Validate(validateFixture{Shop: "demo-shop", StartDate: "2021-01-01"}))
}

func TestTranslateErrorPassesThroughPlainErrors(t *testing.T) {
	errs := translateError(errors.New("boom"))
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0])

	assert.Nil(t, translateError(nil))
}
