package catalog

import "time"

const (
	upstreamName       = "catalog"
	defaultBaseURL     = "https://dummyjson.com"
	defaultHTTPTimeout = 10 * time.Second
	productsPath       = "/products"
	errorBodyLimit     = 512
)
