// Package config loads the service configuration: environment variables into
// tagged structs via github.com/caarlos0/env (with an optional .env file via
// github.com/joho/godotenv), and the registration email policy from a YAML
// file.
//
// Each configuration struct type is parsed once per process and served from a
// cache afterwards, so independent components can Load the same type without
// coordinating.
package config
