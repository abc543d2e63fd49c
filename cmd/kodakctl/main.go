// Command kodakctl runs one-shot camera commands from the shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/camera"
)

const usage = `Usage: kodakctl [flags] <command> [args]

Commands:
  list [get|set|action]               list catalog commands
  describe <command>                  show a command's parameters
  tokens                              list wire tokens
  encode <address> <command> [-p k=v] print the request URL
  decode <token> <raw>                decode a raw reply
  probe <address>                     check that address is a camera
  exec <address> <command> [-p k=v]   execute a command
  query <address> <token>             send a raw wire token
  sweep <address> [-ok]               query every get_ token
  profile list                        list configuration profiles
  profile show [name]                 show a profile (default: active)
  profile create <name> [-activate]   add a profile with default settings
  profile use <name>                  make a profile active
  profile delete <name>               delete an inactive profile
  profile set <name> [flags]          change -timeout, -concurrency, -port,
                                      -api-host or -api-port of a profile

Flags:
`

var errUsage = errors.New("usage")

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	fs := flag.NewFlagSet("kodakctl", flag.ExitOnError)
	timeout := fs.Duration("timeout", camera.DefaultRequestTimeout, "Per-request timeout")
	port := fs.Int("port", camera.DefaultPort, "Camera port when the address has none")
	concurrency := fs.Int("concurrency", camera.DefaultSweepConcurrency, "Concurrent requests during a sweep")
	output := fs.String("o", "text", "Output format: text, json or yaml")
	debug := fs.Bool("debug", false, "Log every camera request")
	dbPath := fs.String("db", "", "Database for profile commands (default: ~/.config/kodakam/kodakam.db)")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	p, err := newPrinter(os.Stdout, *output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &app{
		controller: camera.NewController(camera.Options{
			RequestTimeout:   *timeout,
			SweepConcurrency: *concurrency,
			Port:             *port,
		}),
		out:    p,
		dbPath: *dbPath,
	}

	if err := app.run(ctx, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "kodakctl:", err)
		os.Exit(1)
	}
}

type app struct {
	controller *camera.Controller
	out        *printer
	dbPath     string
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	start := time.Now()
	defer func() {
		log.Debug().Str("command", args[0]).Dur("latency", time.Since(start)).Msg("Done")
	}()

	name, rest := args[0], args[1:]
	switch name {
	case "list":
		return a.list(rest)
	case "describe":
		return a.describe(rest)
	case "tokens":
		return a.tokens()
	case "encode":
		return a.encode(rest)
	case "decode":
		return a.decode(rest)
	case "probe":
		return a.probe(ctx, rest)
	case "exec":
		return a.exec(ctx, rest)
	case "query":
		return a.query(ctx, rest)
	case "sweep":
		return a.sweep(ctx, rest)
	case "profile":
		return a.profile(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}
