package sourceshopify

import (
	"os"

	"github.com/datazip-inc/source-shopify/protocol"
	"github.com/datazip-inc/source-shopify/utils/logger"
	"github.com/datazip-inc/source-shopify/utils/safego"
)

func RegisterDriver(driver protocol.Driver) {
	defer safego.Recovery(true)

	// Execute the root command
	err := protocol.CreateRootCommand(driver).Execute()
	if err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}
