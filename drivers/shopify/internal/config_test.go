package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/source-shopify/constants"
)

func TestConfigValidate(t *testing.T) {
	config := &Config{Shop: "example", APIPassword: "shppa_secret", StartDate: "2021-01-01"}
	require.NoError(t, config.Validate())

	// defaults applied on validation
	assert.Equal(t, constants.DefaultRetryCount, config.RetryCount)
	assert.Equal(t, constants.DefaultRequestRate, config.RequestsPerSecond)
	assert.Equal(t, "https://example.myshopify.com/admin/api/2021-07/", config.BaseURL())

	// RFC3339 start dates are accepted as well
	config = &Config{Shop: "example", APIPassword: "shppa_secret", StartDate: "2021-01-01T00:00:00Z"}
	assert.NoError(t, config.Validate())
}

func TestConfigValidateFailures(t *testing.T) {
	assert.Error(t, (&Config{APIPassword: "x", StartDate: "2021-01-01"}).Validate(), "missing shop")
	assert.Error(t, (&Config{Shop: "example", StartDate: "2021-01-01"}).Validate(), "missing api_password")
	assert.Error(t, (&Config{Shop: "example", APIPassword: "x"}).Validate(), "missing start_date")
	assert.Error(t, (&Config{Shop: "example", APIPassword: "x", StartDate: "01/01/2021"}).Validate(), "non ISO-8601 start_date")
}
