package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"

	defaultSimilarityThreshold = 0.85
	defaultSimilarityLimit     = 10
	defaultUploadMaxBytes      = 5 << 20
	defaultSessionTTL          = 24 * time.Hour
	defaultNonceTTL            = 5 * time.Minute
	defaultClaimLease          = 2 * time.Minute
	defaultServiceTokenTTL     = 5 * time.Minute
	defaultReconcileInterval   = time.Minute
	defaultReconcileBatchSize  = 10
	defaultReconcileAttempts   = 5
	defaultReconcileBackoff    = 3 * time.Second
	defaultListingExpiry       = 7 * 24 * time.Hour
	defaultListingMinBid       = 1_000_000
	defaultQdrantCollection    = "images"
	defaultQdrantPort          = 6334
	defaultEmbeddingTimeout    = 30 * time.Second
	defaultNotifierBufferSize  = 16
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// MigrateOnStart applies pending schema migrations when the database connection starts
		MigrateOnStart bool `json:"migrateOnStart" yaml:"migrateOnStart"`
		// PublicBaseURL is used for links embedded in metadata documents and certificate QR codes
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// PubSub configuration for the lifecycle task queue
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Embedding *EmbeddingConfig `json:"embedding" yaml:"embedding"`

	Qdrant *QdrantConfig `json:"qdrant" yaml:"qdrant"`

	Similarity *SimilarityConfig `json:"similarity" yaml:"similarity"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Listing policy defaults for soft listings
	Listing *ListingConfig `json:"listing" yaml:"listing"`

	Lifecycle *LifecycleConfig `json:"lifecycle" yaml:"lifecycle"`

	Reconciliation *ReconciliationConfig `json:"reconciliation" yaml:"reconciliation"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// Notifier configuration for realtime lifecycle events
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// Firebase configuration for topic fan-out of lifecycle events
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for record certificates
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// SecretKeyConfig holds HMAC secrets
type SecretKeyConfig struct {
	// Session signs user session tokens
	Session string `json:"session" yaml:"session"`
	// Service signs service-to-service tokens for the lifecycle task queue
	Service string `json:"service" yaml:"service"`
}

// SessionConfig defines wallet login and session settings
type SessionConfig struct {
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	NonceTTL   time.Duration `json:"nonceTtl" yaml:"nonceTtl"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for lifecycle tasks
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the lifecycle worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// ServiceTokenTTL is the lifetime of the scoped token attached to local pushes
	ServiceTokenTTL time.Duration `json:"serviceTokenTtl" yaml:"serviceTokenTtl"`
}

// EmbeddingConfig points at the image embedding service
type EmbeddingConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// QdrantConfig defines the similarity index connection
type QdrantConfig struct {
	Host       string `json:"host" yaml:"host"`
	Port       int    `json:"port" yaml:"port"`
	APIKey     string `json:"apiKey" yaml:"apiKey"`
	UseTLS     bool   `json:"useTls" yaml:"useTls"`
	Collection string `json:"collection" yaml:"collection"`
	// VectorSize is used when the collection has to be created
	VectorSize uint64 `json:"vectorSize" yaml:"vectorSize"`
}

// SimilarityConfig defines the dedup and verification boundary.
// A higher threshold rejects fewer images as duplicates but lets more near-duplicates through as distinct.
type SimilarityConfig struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	// Limit is the page size for verification queries; every match above Threshold is still returned
	Limit int `json:"limit" yaml:"limit"`
}

// StorageConfig defines the durable blob bucket (s3://, gs://, file://, mem://)
type StorageConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicBaseURL, when set, prefixes keys in content references
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// LedgerConfig defines the Solana RPC connection and program
type LedgerConfig struct {
	RPCURL      string `json:"rpcUrl" yaml:"rpcUrl"`
	ProgramID   string `json:"programId" yaml:"programId"`
	PayerSecret string `json:"payerSecret" yaml:"payerSecret"`
	Marketplace string `json:"marketplace" yaml:"marketplace"`
	// ConfirmAttempts bounds signature status polling after submission
	ConfirmAttempts int           `json:"confirmAttempts" yaml:"confirmAttempts"`
	ConfirmInterval time.Duration `json:"confirmInterval" yaml:"confirmInterval"`
}

// ListingConfig holds the soft listing policy defaults
type ListingConfig struct {
	MinBid uint64        `json:"minBid" yaml:"minBid"`
	Expiry time.Duration `json:"expiry" yaml:"expiry"`
}

// LifecycleConfig defines claim semantics for lifecycle transitions
type LifecycleConfig struct {
	ClaimLease time.Duration `json:"claimLease" yaml:"claimLease"`
}

// ReconciliationConfig defines the fingerprint backup sweep
type ReconciliationConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Interval    time.Duration `json:"interval" yaml:"interval"`
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff     time.Duration `json:"backoff" yaml:"backoff"`
}

// UploadConfig defines accepted submissions
type UploadConfig struct {
	MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`
}

// FirebaseConfig defines Firebase configuration for event fan-out
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// NotifierConfig defines realtime event delivery
type NotifierConfig struct {
	// RelayEndpoint is the API's internal event endpoint; processes without websocket clients relay events there
	RelayEndpoint string `json:"relayEndpoint" yaml:"relayEndpoint"`
	// BufferSize is the per-subscriber queue length of the websocket hub
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills optional sections so consumers never deal with nil pointers.
func ApplyDefaults(cfg *Config) {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.NonceTTL <= 0 {
		cfg.Session.NonceTTL = defaultNonceTTL
	}

	if cfg.PubSub != nil && cfg.PubSub.ServiceTokenTTL <= 0 {
		cfg.PubSub.ServiceTokenTTL = defaultServiceTokenTTL
	}

	if cfg.Embedding == nil {
		cfg.Embedding = &EmbeddingConfig{}
	}
	if cfg.Embedding.Timeout <= 0 {
		cfg.Embedding.Timeout = defaultEmbeddingTimeout
	}

	if cfg.Qdrant == nil {
		cfg.Qdrant = &QdrantConfig{}
	}
	if cfg.Qdrant.Collection == "" {
		cfg.Qdrant.Collection = defaultQdrantCollection
	}
	if cfg.Qdrant.Port == 0 {
		cfg.Qdrant.Port = defaultQdrantPort
	}

	if cfg.Similarity == nil {
		cfg.Similarity = &SimilarityConfig{}
	}
	if cfg.Similarity.Threshold <= 0 || cfg.Similarity.Threshold > 1 {
		cfg.Similarity.Threshold = defaultSimilarityThreshold
	}
	if cfg.Similarity.Limit <= 0 {
		cfg.Similarity.Limit = defaultSimilarityLimit
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}

	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}

	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Listing.MinBid == 0 {
		cfg.Listing.MinBid = defaultListingMinBid
	}
	if cfg.Listing.Expiry <= 0 {
		cfg.Listing.Expiry = defaultListingExpiry
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.BufferSize <= 0 {
		cfg.Notifier.BufferSize = defaultNotifierBufferSize
	}

	if cfg.Lifecycle == nil {
		cfg.Lifecycle = &LifecycleConfig{}
	}
	if cfg.Lifecycle.ClaimLease <= 0 {
		cfg.Lifecycle.ClaimLease = defaultClaimLease
	}

	if cfg.Reconciliation == nil {
		cfg.Reconciliation = &ReconciliationConfig{Enabled: true}
	}
	if cfg.Reconciliation.Interval <= 0 {
		cfg.Reconciliation.Interval = defaultReconcileInterval
	}
	if cfg.Reconciliation.BatchSize <= 0 {
		cfg.Reconciliation.BatchSize = defaultReconcileBatchSize
	}
	if cfg.Reconciliation.MaxAttempts <= 0 {
		cfg.Reconciliation.MaxAttempts = defaultReconcileAttempts
	}
	if cfg.Reconciliation.Backoff <= 0 {
		cfg.Reconciliation.Backoff = defaultReconcileBackoff
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = defaultUploadMaxBytes
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
