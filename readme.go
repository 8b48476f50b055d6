package ndcapi

import _ "embed"

// Readme is served as the OpenAPI description of the API.
//
//go:embed README.md
var Readme string
