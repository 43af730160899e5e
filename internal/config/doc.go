// Package config manages application configuration for the Headlines API.
//
// Configuration is read from environment variables with defaults:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // every problem is reported at once
//	}
//
// # Configuration Groups
//
//   - ServerConfig: port, timeouts, CORS origins, BASE_PATH
//   - DatabaseConfig: DB_DRIVER and SurrealDB connection settings
//   - MongoConfig: MongoDB URI, database, and users collection
//   - JWTConfig: key paths, issuer, token lifetime
//   - LogConfig: level, format, and optional rotating log file
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP port (default: 8080)
//	BASE_PATH            - route prefix (default: /api)
//	DB_DRIVER            - surrealdb or mongodb (default: surrealdb)
//	DB_HOST, DB_PORT     - SurrealDB address
//	MONGO_URI            - MongoDB connection string
//	JWT_PUBLIC_KEY_PATH  - key used to verify bearer tokens
//	LOG_LEVEL            - debug, info, warn, error (default: info)
//	LOG_FILE             - rotate logs into this file instead of stdout
package config
