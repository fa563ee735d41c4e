// Package utils provides small helpers shared by the transport packages:
// a preconfigured resty HTTP client, base-address normalisation and trace
// identifier generation.
package utils
