package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The bcrypt cost is range-checked here so that a bad value fails the process
// at boot instead of on the first registration request.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return errors.New("token sign key must not be empty")
	}

	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return errors.New("bcrypt cost is out of range")
	}

	return nil
}
