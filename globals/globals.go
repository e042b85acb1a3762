package globals

import "os"

var (
	JwtSecret = []byte(jwtSecretFromEnv())
)

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "merma_dev_secret" // override with JWT_SECRET outside dev
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const SessionIDKey ContextKey = "sessionId"
