// Package config fills configuration structs from the process environment.
//
// Structs declare their variables with caarlos0/env tags:
//
//	type Config struct {
//		PasswordPolicy string `env:"SIGNUP_PASSWORD_POLICY" envDefault:"strict"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first call loads a .env file from the working directory when one exists.
// Load parses each struct type once and serves later calls from a per-type
// cache; Parse skips the cache. Reset clears it between tests.
package config
