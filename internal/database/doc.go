// Package database holds the connections behind the user stores.
//
// SurrealDB is reached through the Database interface. The user repository
// depends only on its Records subset: one parameterized SELECT to load a user
// record and one UPDATE to write it back. There are no multi-statement
// transactions. Concurrent writers to the same record race and the last
// UPDATE wins.
//
// Mongo is a connection holder that hands out collections; the Mongo user
// repository issues its own FindOne and UpdateOne calls.
//
// Failures are reported with ErrNotFound, ErrConnection, or ErrQuery, wrapped
// with driver detail, so callers test them with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    return nil, nil
//	}
package database
