package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
	IdentityProviderMock     = "mock"
)

// Location store providers
const (
	LocationProviderFirebase = "firebase"
	LocationProviderRedis    = "redis"
	LocationProviderMemory   = "memory"
)

// Alert store providers
const (
	AlertProviderFirestore = "firestore"
	AlertProviderMemory    = "memory"
)

// Assistant providers
const (
	AssistantProviderGemini   = "gemini"
	AssistantProviderFallback = "fallback"
)

// Push notification providers
const (
	NotificationProviderFirebase = "firebase"
	NotificationProviderLog      = "log"
)

// DefaultDisplayName is used for tracked users that never set a name.
const DefaultDisplayName = "User"

// DefaultEmergencyType is recorded on SOS alerts sent without a type.
const DefaultEmergencyType = "general"

// AlertStatusActive marks an alert that is still shown in the nearby feed.
const AlertStatusActive = "active"
