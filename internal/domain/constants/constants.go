// Package constants contains values shared across layers.
package constants

// Event publisher providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Headers read from inbound requests for request metadata.
const (
	HeaderSessionID    = "X-Session-Id"
	HeaderClientSource = "X-Client-Source"
)
