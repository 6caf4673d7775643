// Package file provides file-based driven adapters for configuration and
// secrets, stored as TOML in the maele config directory.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maele-app/maele-cli/internal/core/ports/driven"
)

// Ensure SecretsStore implements the interface.
var _ driven.SecretsStore = (*SecretsStore)(nil)

// ErrNoCredentials indicates neither an inline [firebase] mapping nor a
// key file is available.
var ErrNoCredentials = errors.New("secrets: no firebase credentials configured")

// secretsFile is the secrets file name inside the config directory.
const secretsFile = "secrets.toml"

// keyFile is the fallback service-account key file inside the config
// directory, used when the secrets file carries no inline mapping.
const keyFile = "firebase-key.json"

// secrets mirrors the TOML secrets file layout:
//
//	admin_password = "..."
//	key_file = "/optional/override/firebase-key.json"
//
//	[firebase]
//	type = "service_account"
//	project_id = "..."
//	...
type secrets struct {
	AdminPassword string         `toml:"admin_password"`
	KeyFile       string         `toml:"key_file"`
	Firebase      map[string]any `toml:"firebase"`
}

// SecretsStore reads deployment secrets from a TOML file.
// A missing secrets file is not an error; every secret is then absent and
// the callers decide what is fatal.
type SecretsStore struct {
	dir  string
	data secrets
}

// NewSecretsStore loads secrets from configDir/secrets.toml.
// If configDir is empty, defaults to ~/.maele.
func NewSecretsStore(configDir string) (*SecretsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".maele")
	}

	s := &SecretsStore{dir: configDir}

	raw, err := os.ReadFile(filepath.Join(configDir, secretsFile))
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", secretsFile, err)
	}

	return s, nil
}

// AdminPassword returns the configured admin password, or "".
func (s *SecretsStore) AdminPassword() string {
	return s.data.AdminPassword
}

// ServiceAccountJSON returns the service-account credential document.
// The inline [firebase] mapping takes precedence; otherwise the key file
// (configured path or configDir/firebase-key.json) is read.
func (s *SecretsStore) ServiceAccountJSON() ([]byte, error) {
	if len(s.data.Firebase) > 0 {
		data, err := json.Marshal(s.data.Firebase)
		if err != nil {
			return nil, fmt.Errorf("encoding inline firebase credentials: %w", err)
		}
		return data, nil
	}

	path := s.data.KeyFile
	if path == "" {
		path = filepath.Join(s.dir, keyFile)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w (looked for %s)", ErrNoCredentials, path)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Path returns the secrets file path.
func (s *SecretsStore) Path() string {
	return filepath.Join(s.dir, secretsFile)
}
