// Package store provides the persistence slot for edcourse.
//
// The package defines the [Store] interface, a deliberately small key/value
// contract: the whole application state lives in one slot that is replaced on
// every save, and the ambient [model.Config] lives in its own record.
//
// # Backends
//
//   - [Bolt]: BoltDB file (default build)
//   - [SQLite]: pure Go SQLite file (build with -tags sqlite)
//   - [Memory]: in-process map for tests and ephemeral sessions
//
// # Singleton Pattern
//
// Use [GetDB] to obtain the build-selected database instance:
//
//	db, err := store.GetDB()
//	blob, err := db.Get(application.StateKey)
package store
