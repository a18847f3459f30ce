package app

import (
	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/services/encryption"
)

// App bundles the services the CLI commands use.
type App struct {
	Encrypter domain.Encrypter
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	cipher := crypto.SecretBox{}

	var svc *encryption.Service
	if cfg.DefaultKey != nil {
		svc = encryption.NewWithKey(cipher, cfg.DefaultKey)
	} else {
		svc = encryption.New(cipher)
	}

	return &App{Encrypter: svc}
}
