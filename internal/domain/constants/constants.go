package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNone     = "none"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// DefaultAuthHeader carries the identity token on every authenticated request.
const DefaultAuthHeader = "X-AUTH-TOKEN"

// Paging limits
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// AutoCompleteLimit caps the number of storenames returned by the store search box.
const AutoCompleteLimit = 10

// MessageTimeLayout formats reservation times in notification texts.
const MessageTimeLayout = "2006-01-02 15:04:05"
