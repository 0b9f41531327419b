// Command arptapd reads frames from a virtual network interface and logs
// the ARP resolution table it builds from them.
package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/mdlayher/arptap"
	"github.com/mdlayher/arptap/capture"
	"github.com/mdlayher/arptap/internal/config"
	"github.com/mdlayher/arptap/tap"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.StringFlag{
			Name:    "interface",
			Aliases: []string{"i"},
			Usage:   "virtual interface to read frames from",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "interface driver: tap, raw",
		},
		&cli.StringFlag{
			Name:  "ip",
			Usage: "IPv4 address of this node",
		},
		&cli.StringFlag{
			Name:  "capture",
			Usage: "write every frame read to this pcap file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
}

func main() {
	app := &cli.App{
		Name:   "arptapd",
		Usage:  "ARP resolution table for a virtual interface",
		Flags:  flags(),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		ll := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		ll.Fatal().Msg(errors.ErrorStack(err))
	}
}

// loadConfig reads the configuration file, if any, and applies command
// line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet("interface") {
		cfg.Interface = c.String("interface")
	}
	if c.IsSet("driver") {
		cfg.Driver = c.String("driver")
	}
	if c.IsSet("ip") {
		cfg.Address = c.String("ip")
	}
	if c.IsSet("capture") {
		cfg.Capture = c.String("capture")
	}
	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
	}

	cfg.Default()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(cfg config.Log) (zerolog.Logger, error) {
	lvl, err := cfg.ZeroLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	var w io.Writer = os.Stderr
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	ll, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	ip, err := cfg.IP()
	if err != nil {
		return err
	}

	dev, err := tap.Open(cfg.Tap())
	if err != nil {
		return err
	}
	defer dev.Close()

	ll.Info().
		Str("interface", dev.Name()).
		Str("driver", cfg.Driver).
		Stringer("ip", ip).
		Msg("interface ready, waiting for frames")

	s := arptap.NewServer(dev, ip, ll)
	s.FrameSize = cfg.FrameSize

	if cfg.Capture != "" {
		f, err := os.Create(cfg.Capture)
		if err != nil {
			return errors.Annotate(err, "create capture file")
		}
		defer f.Close()

		w, err := capture.NewWriter(f, cfg.FrameSize)
		if err != nil {
			return errors.Annotate(err, "write capture header")
		}
		s.Capture = w
	}

	errC := make(chan error, 1)
	go func() {
		errC <- s.Serve()
	}()

	dumpC := make(chan os.Signal, 1)
	if len(dumpSignals) > 0 {
		signal.Notify(dumpC, dumpSignals...)
	}
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-dumpC:
			dumpTable(ll, s.Table)
		case sig := <-sigC:
			ll.Info().Stringer("signal", sig).Msg("shutting down")
			dumpTable(ll, s.Table)
			return nil
		case err := <-errC:
			dumpTable(ll, s.Table)
			return errors.Annotate(err, "serve")
		}
	}
}

func dumpTable(ll zerolog.Logger, t *arptap.Table) {
	es := t.Entries()
	ll.Info().Int("entries", len(es)).Msg("resolution table")
	for _, e := range es {
		ll.Info().
			Stringer("protocol", e.ProtocolType).
			Str("addr", e.ProtocolAddr()).
			Stringer("mac", e.HardwareAddr).
			Time("last_seen", e.LastSeen).
			Msg("entry")
	}
}
