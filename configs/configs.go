package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                    string
	AuthProvider            string
	AccessTokenSecret       string
	FirebaseCredentialsFile string
	RedisUrl                string
	RedisPassword           string
	MongodbDatabaseUrl      string
	MongodbDatabaseName     string
	OmdbApiUrl              string
	OmdbApiKey              string
	CorsAllowedOrigins      []string
	SentryDns               string
	SentryRelease           string
	PrintErrors             bool
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.AuthProvider = os.Getenv("AUTH_PROVIDER")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.FirebaseCredentialsFile = os.Getenv("FIREBASE_CREDENTIALS_FILE")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.OmdbApiUrl = os.Getenv("OMDB_API_URL")
	configs.OmdbApiKey = os.Getenv("OMDB_API_KEY")
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
}

// SetAccessTokenSecret overrides the jwt secret, only needed from tests.
func SetAccessTokenSecret(secret string) {
	configs.AccessTokenSecret = secret
}
