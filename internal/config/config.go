// Package config loads the arptapd configuration file.
package config

import (
	"io/ioutil"
	"strings"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/mdlayher/arptap"
	"github.com/mdlayher/arptap/tap"
)

// Defaults applied by Default.
const (
	DefaultInterface = "toytap"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Log configures diagnostics output.
type Log struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // console or json
}

// Config is the arptapd configuration.
type Config struct {
	Interface   string `yaml:"interface,omitempty"`
	Driver      string `yaml:"driver,omitempty"`
	Promiscuous bool   `yaml:"promiscuous,omitempty"`
	Address     string `yaml:"address"`
	FrameSize   int    `yaml:"frame_size,omitempty"`
	Capture     string `yaml:"capture,omitempty"`
	Log         Log    `yaml:"log"`
}

// Load reads and parses the YAML file at path, applying defaults.  The
// result is not validated.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data, applying defaults.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Annotate(err, "parse config")
	}

	c.Default()
	return c, nil
}

// Default fills unset fields with their default values.
func (c *Config) Default() {
	if c.Interface == "" {
		c.Interface = DefaultInterface
	}
	if c.Driver == "" {
		c.Driver = string(tap.DriverTAP)
	}
	if c.FrameSize == 0 {
		c.FrameSize = arptap.DefaultFrameSize
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate reports the first invalid field in c.
func (c *Config) Validate() error {
	if len(c.Interface) >= tap.IFNAMSIZ {
		return errors.NotValidf("interface name %q", c.Interface)
	}

	switch tap.Driver(c.Driver) {
	case tap.DriverTAP, tap.DriverRaw:
	default:
		return errors.NotValidf("driver %q", c.Driver)
	}

	if _, err := c.IP(); err != nil {
		return err
	}

	if c.FrameSize < arptap.EthernetHeaderLen {
		return errors.NotValidf("frame size %d", c.FrameSize)
	}

	if _, err := c.Log.ZeroLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return errors.NotValidf("log format %q", c.Log.Format)
	}

	return nil
}

// ZeroLevel returns the configured level as a zerolog.Level.
func (l Log) ZeroLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, errors.NotValidf("log level %q", l.Level)
	}

	return lvl, nil
}

// IP returns the parsed node address.
func (c *Config) IP() (arptap.IPv4, error) {
	ip, err := arptap.ParseIPv4(c.Address)
	if err != nil {
		return arptap.IPv4{}, errors.NotValidf("address %q", c.Address)
	}

	return ip, nil
}

// Tap returns the device configuration.
func (c *Config) Tap() tap.Config {
	return tap.Config{
		Name:        c.Interface,
		Driver:      tap.Driver(c.Driver),
		Promiscuous: c.Promiscuous,
	}
}
