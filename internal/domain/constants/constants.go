// Package constants holds identifiers shared across layers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events over HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Context keys set by the authentication middleware.
const (
	ContextKeySubject = "subject"
	ContextKeyRole    = "role"
)
