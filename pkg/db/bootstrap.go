package db

import (
	"context"
	"fmt"
)

// DefaultProfile is the name of the profile created on first run.
const DefaultProfile = "default"

// Bootstrap creates the default profile on first run. It is a no-op once
// any profile exists.
func (db *DB) Bootstrap(ctx context.Context) error {
	needed, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needed {
		return nil
	}

	p := &Profile{Name: DefaultProfile, IsActive: true}
	if err := db.Profiles().Create(ctx, p); err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}
	return nil
}

// NeedsBootstrap returns true if the database has no profiles yet.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
