package driver

import (
	"fmt"
	"time"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/utils"
)

// Config represents the configuration for connecting to a Shopify store
type Config struct {
	Shop              string  `json:"shop" validate:"required"`
	APIPassword       string  `json:"api_password" validate:"required"`
	StartDate         string  `json:"start_date" validate:"required"`
	RetryCount        int     `json:"backoff_retry_count"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

// BaseURL generates the pinned Admin API root for the configured store
func (c *Config) BaseURL() string {
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/", c.Shop, constants.APIVersion)
}

func (c *Config) Validate() error {
	if err := utils.Validate(c); err != nil {
		return fmt.Errorf("failed to validate config: %s", err)
	}

	if _, err := time.Parse("2006-01-02", c.StartDate); err != nil {
		if _, err := time.Parse(time.RFC3339, c.StartDate); err != nil {
			return fmt.Errorf("start_date[%s] is not an ISO-8601 date", c.StartDate)
		}
	}

	if c.RetryCount <= 0 {
		c.RetryCount = constants.DefaultRetryCount
	}

	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = constants.DefaultRequestRate
	}

	return nil
}
