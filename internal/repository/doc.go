// Package repository implements the data access layer for the Headlines API.
//
// Two user stores are provided and selected at startup by DB_DRIVER:
//
//   - UserRepository: SurrealDB, SurrealQL queries through database.Records
//   - MongoUserRepository: MongoDB, one document per user in the users collection
//
// Both satisfy service.UserStore: GetByID returns (nil, nil) for a missing user,
// and Save overwrites name, email, preferences, and favorites in one write.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewUserRepository(db)
//	user, err := repo.GetByID(ctx, "user:abc123")
//	if err != nil {
//	    return err
//	}
//	if user == nil {
//	    // Handle not found
//	}
package repository
