// Package settings is a named key/value settings store with connection
// string lookup.
//
// Values come, in increasing precedence, from an optional settings.yaml in
// the store directory, a .env file in the same directory, environment
// variables prefixed with TOOLKIT_, and values written with Set. Keys are
// case-insensitive and nest with dots; TOOLKIT_CONNECTION_STRINGS_MAIN
// answers ConnectionString("main").
//
// A Store is not safe for concurrent Set calls.
//
// # Usage
//
//	s, err := settings.Load(".")
//	dsn, ok := s.ConnectionString("main")
//	s.Set("feature.flag", "true")
package settings
