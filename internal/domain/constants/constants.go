package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in the Pub/Sub message attributes
const (
	EventTypeOfferPublished = "offer.published"
)

// Firebase sign-in providers as reported in the ID token's firebase.sign_in_provider claim
const (
	FirebaseSignInAnonymous = "anonymous"
	FirebaseSignInGoogle    = "google.com"
)

// FCMBatchSize is the maximum number of tokens per multicast request.
const FCMBatchSize = 500
