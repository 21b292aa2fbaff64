// Package constants holds shared domain-level constants.
package constants

// Location feed provider names, matched against config.
const (
	PubSubProviderInProcess = "inprocess"
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
)

// Deployment environment names, matched against config.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
