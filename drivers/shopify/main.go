package main

import (
	sourceshopify "github.com/datazip-inc/source-shopify"
	driver "github.com/datazip-inc/source-shopify/drivers/shopify/internal"
)

func main() {
	sourceshopify.RegisterDriver(&driver.Shopify{})
}
