package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrCameraSettingsNotFound = errors.New("camera settings not found")

// CameraSettings tune the HTTP transport used to reach cameras.
type CameraSettings struct {
	ID               int64
	ProfileID        int64
	RequestTimeoutMS int
	SweepConcurrency int
	CameraPort       int
	UpdatedAt        time.Time
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *CameraSettings) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// CameraSettingsStore reads and updates camera transport settings.
type CameraSettingsStore interface {
	Get(ctx context.Context, profileID int64) (*CameraSettings, error)
	Update(ctx context.Context, c *CameraSettings) error
}

// CameraSettings returns a CameraSettingsStore for this database.
func (db *DB) CameraSettings() CameraSettingsStore {
	return &cameraSettingsStore{db: db}
}

type cameraSettingsStore struct {
	db *DB
}

func (s *cameraSettingsStore) Get(ctx context.Context, profileID int64) (*CameraSettings, error) {
	c := &CameraSettings{}
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, request_timeout_ms, sweep_concurrency, camera_port, updated_at
		FROM camera_settings WHERE profile_id = ?
	`, profileID).Scan(&c.ID, &c.ProfileID, &c.RequestTimeoutMS, &c.SweepConcurrency, &c.CameraPort, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCameraSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	c.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return c, nil
}

func (s *cameraSettingsStore) Update(ctx context.Context, c *CameraSettings) error {
	switch {
	case c.RequestTimeoutMS <= 0:
		return fmt.Errorf("request timeout must be positive, got %dms", c.RequestTimeoutMS)
	case c.SweepConcurrency <= 0:
		return fmt.Errorf("sweep concurrency must be positive, got %d", c.SweepConcurrency)
	case c.CameraPort <= 0 || c.CameraPort > 65535:
		return fmt.Errorf("invalid camera port %d", c.CameraPort)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE camera_settings
		SET request_timeout_ms = ?, sweep_concurrency = ?, camera_port = ?, updated_at = datetime('now')
		WHERE profile_id = ?
	`, c.RequestTimeoutMS, c.SweepConcurrency, c.CameraPort, c.ProfileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCameraSettingsNotFound
	}
	return nil
}
