// Package config loads environment-based configuration structs, bootstrapping
// from a .env file in development. Each configuration type is parsed once per
// process so components observe consistent values.
package config
