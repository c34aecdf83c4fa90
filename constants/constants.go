package constants

import "time"

const (
	// APIVersion is the latest stable release of the Shopify Admin REST API
	// this connector is pinned against.
	APIVersion = "2021-07"

	// PageSize is the number of records requested per page; it doubles as the
	// state checkpoint interval, bounding replay cost on crash to one page.
	PageSize = 250

	AuthHeader      = "X-Shopify-Access-Token"
	CallLimitHeader = "X-Shopify-Shop-Api-Call-Limit"

	DefaultRetryCount = 3
	DefaultRetryDelay = 5 * time.Second

	// DefaultRequestRate is the proactive throttle applied when response
	// headers have not been observed yet (standard plan: 2 req/sec leaky bucket).
	DefaultRequestRate = 2.0
)

const (
	ConfigFolder = "CONFIG_FOLDER"
	StatePath    = "STATE_PATH"
	StreamsPath  = "STREAMS_PATH"
)
