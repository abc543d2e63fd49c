package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urmzd/kodakam/pkg/db"
)

// profileView is one profile with the settings cmd/api and cmd/mcp load from it.
type profileView struct {
	Name             string `json:"name" yaml:"name"`
	Active           bool   `json:"active" yaml:"active"`
	APIAddress       string `json:"api_address" yaml:"api_address"`
	RequestTimeout   string `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
	SweepConcurrency int    `json:"sweep_concurrency,omitempty" yaml:"sweep_concurrency,omitempty"`
	CameraPort       int    `json:"camera_port,omitempty" yaml:"camera_port,omitempty"`
}

func newProfileView(cfg *db.Config) profileView {
	v := profileView{
		Name:       cfg.Profile.Name,
		Active:     cfg.Profile.IsActive,
		APIAddress: cfg.APIAddress(),
	}
	if cfg.Camera != nil {
		v.RequestTimeout = cfg.Camera.RequestTimeout().String()
		v.SweepConcurrency = cfg.Camera.SweepConcurrency
		v.CameraPort = cfg.Camera.CameraPort
	}
	return v
}

func (v profileView) text() string {
	marker := " "
	if v.Active {
		marker = "*"
	}
	return fmt.Sprintf("%s %-16s api=%s timeout=%s concurrency=%d port=%d",
		marker, v.Name, v.APIAddress, v.RequestTimeout, v.SweepConcurrency, v.CameraPort)
}

func (a *app) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	database, err := db.Open(a.dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := database.Init(ctx); err != nil {
		return err
	}

	name, rest := args[0], args[1:]
	switch name {
	case "list":
		return a.profileList(ctx, database)
	case "show":
		return a.profileShow(ctx, database, rest)
	case "create":
		return a.profileCreate(ctx, database, rest)
	case "use":
		return a.profileUse(ctx, database, rest)
	case "delete":
		return a.profileDelete(ctx, database, rest)
	case "set":
		return a.profileSet(ctx, database, rest)
	default:
		return fmt.Errorf("%w: unknown profile command %q", errUsage, name)
	}
}

func (a *app) profileList(ctx context.Context, database *db.DB) error {
	profiles, err := database.Profiles().List(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder
	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		cfg, err := database.ProfileConfig(ctx, p.Name)
		if err != nil {
			return err
		}
		v := newProfileView(cfg)
		views = append(views, v)
		b.WriteString(v.text())
		b.WriteString("\n")
	}
	return a.out.print(strings.TrimRight(b.String(), "\n"), views)
}

// profileShow prints the named profile, or the active one.
func (a *app) profileShow(ctx context.Context, database *db.DB, args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	var name string
	if len(args) == 1 {
		name = args[0]
	}
	cfg, err := database.ProfileConfig(ctx, name)
	if err != nil {
		return err
	}
	v := newProfileView(cfg)
	return a.out.print(v.text(), v)
}

func (a *app) profileCreate(ctx context.Context, database *db.DB, args []string) error {
	if len(args) < 1 || args[0] == "" || strings.HasPrefix(args[0], "-") {
		return errUsage
	}
	fs := flag.NewFlagSet("profile create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	activate := fs.Bool("activate", false, "make the new profile active")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if _, err := database.Profiles().GetByName(ctx, args[0]); err == nil {
		return fmt.Errorf("profile %q already exists", args[0])
	} else if !errors.Is(err, db.ErrProfileNotFound) {
		return err
	}

	p := &db.Profile{Name: args[0]}
	if err := database.Profiles().Create(ctx, p); err != nil {
		return err
	}
	if *activate {
		if err := database.Profiles().SetActive(ctx, p.ID); err != nil {
			return err
		}
	}
	return a.profileShow(ctx, database, args[:1])
}

func (a *app) profileUse(ctx context.Context, database *db.DB, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := database.Profiles().GetByName(ctx, args[0])
	if err != nil {
		return fmt.Errorf("profile %q: %w", args[0], err)
	}
	if err := database.Profiles().SetActive(ctx, p.ID); err != nil {
		return err
	}
	return a.profileShow(ctx, database, args)
}

// profileDelete removes a profile and its settings. The active profile
// cannot be deleted.
func (a *app) profileDelete(ctx context.Context, database *db.DB, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := database.Profiles().GetByName(ctx, args[0])
	if err != nil {
		return fmt.Errorf("profile %q: %w", args[0], err)
	}
	if p.IsActive {
		return fmt.Errorf("profile %q is active; switch with \"profile use\" first", p.Name)
	}
	if err := database.Profiles().Delete(ctx, p.ID); err != nil {
		return err
	}
	return a.out.print("deleted "+p.Name, map[string]string{"deleted": p.Name})
}

// profileSet updates the camera and API server settings of a profile. Only
// the flags given are changed.
func (a *app) profileSet(ctx context.Context, database *db.DB, args []string) error {
	if len(args) < 2 || strings.HasPrefix(args[0], "-") {
		return errUsage
	}
	fs := flag.NewFlagSet("profile set", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	timeout := fs.Duration("timeout", 0, "per-request camera timeout")
	concurrency := fs.Int("concurrency", 0, "concurrent requests during a sweep")
	port := fs.Int("port", 0, "camera port when an address has none")
	apiHost := fs.String("api-host", "", "REST API listen host")
	apiPort := fs.Int("api-port", 0, "REST API listen port")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg, err := database.ProfileConfig(ctx, args[0])
	if err != nil {
		return err
	}

	var cameraChanged, apiChanged bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout", "concurrency", "port":
			cameraChanged = true
		case "api-host", "api-port":
			apiChanged = true
		}
	})
	if !cameraChanged && !apiChanged {
		return fmt.Errorf("%w: profile set needs at least one setting", errUsage)
	}

	if cameraChanged {
		settings := cfg.Camera
		if settings == nil {
			return fmt.Errorf("profile %q: %w", args[0], db.ErrCameraSettingsNotFound)
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "timeout":
				settings.RequestTimeoutMS = int(*timeout / time.Millisecond)
			case "concurrency":
				settings.SweepConcurrency = *concurrency
			case "port":
				settings.CameraPort = *port
			}
		})
		if err := database.CameraSettings().Update(ctx, settings); err != nil {
			return err
		}
	}

	if apiChanged {
		server := cfg.APIServer
		if server == nil {
			return fmt.Errorf("profile %q: %w", args[0], db.ErrAPIServerNotFound)
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "api-host":
				server.Host = *apiHost
			case "api-port":
				server.Port = *apiPort
			}
		})
		if err := database.APIServers().Update(ctx, server); err != nil {
			return err
		}
	}

	return a.profileShow(ctx, database, args[:1])
}
