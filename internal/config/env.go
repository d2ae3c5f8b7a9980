// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile holds local overrides such as DATABASE_DSN or CLOUDINARY_API_KEY.
// It is optional and never shadows a variable the process already has.
var dotEnvFile = ".env"

// parseEnv fills cfg from the environment after loading dotEnvFile.
func parseEnv(cfg any) error {
	err := godotenv.Load(dotEnvFile)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("config: read %s: %w", dotEnvFile, err)
	}

	if err = env.Parse(cfg); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
