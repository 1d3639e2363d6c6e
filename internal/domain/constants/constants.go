package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for the lifecycle task queue
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Service credential used between the task publisher and the lifecycle worker
const (
	ServiceTokenScope    = "lifecycle:task"
	ServiceTokenAudience = "lifecycle-worker"

	EventRelayScope    = "lifecycle:event"
	EventRelayAudience = "realtime-hub"
)

// RealtimeRoomPrefix namespaces the per-session realtime rooms and push topics.
const RealtimeRoomPrefix = "image-"

// Storage key prefixes
const (
	StoragePrefixOriginal    = "originals"
	StoragePrefixWatermarked = "watermarked"
	StoragePrefixMetadata    = "metadata"
	StoragePrefixFingerprint = "fingerprints"
)

// WatermarkVersion is embedded into every provenance payload.
const WatermarkVersion = "1.0"

// LoginMessagePrefix is the text a wallet signs during login, followed by the nonce.
const LoginMessagePrefix = "Sign this message to authenticate: "
