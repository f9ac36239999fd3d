// Package spec embeds the OpenAPI specification for the Side Quest API.
// It is imported by the HTTP server to serve the contract at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
