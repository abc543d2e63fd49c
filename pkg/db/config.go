package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProfile = errors.New("no active profile found")

const defaultAPIAddress = "0.0.0.0:8080"

// Config is the runtime configuration of the active profile.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
	Camera    *CameraSettings
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return defaultAPIAddress
	}
	return c.APIServer.Address()
}

// ActiveConfig loads the configuration of the active profile. Missing
// API server or camera rows leave the corresponding field nil.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}
	return db.loadConfig(ctx, profile)
}

// ProfileConfig loads the configuration of the named profile, or of the
// active profile when name is empty.
func (db *DB) ProfileConfig(ctx context.Context, name string) (*Config, error) {
	if name == "" {
		return db.ActiveConfig(ctx)
	}
	profile, err := db.Profiles().GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return db.loadConfig(ctx, profile)
}

func (db *DB) loadConfig(ctx context.Context, profile *Profile) (*Config, error) {
	config := &Config{Profile: profile}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	camera, err := db.CameraSettings().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrCameraSettingsNotFound) {
		return nil, fmt.Errorf("failed to get camera settings: %w", err)
	}
	config.Camera = camera

	return config, nil
}
