// Package config loads and holds the application configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/womat/debug"
	"gopkg.in/yaml.v2"
)

// Config defines the struct of the global config and of the configuration
// file. Interval fields are configured as plain integers and mapped to
// time.Duration in LoadConfig.
type Config struct {
	// Bus is the I2C bus number both ENV-III sensors are attached to.
	Bus int `yaml:"bus"`
	// Fake replaces the hardware drivers with simulated sensors.
	Fake bool `yaml:"fake"`
	// AlertGpio is the GPIO line wired to the SHT30 alert pin, 0 disables it.
	AlertGpio      int           `yaml:"alertgpio"`
	AlertBounceInt int           `yaml:"alertbouncetime"`
	AlertBounce    time.Duration `yaml:"-"`
	// IntervalInt is the measurement period in seconds.
	IntervalInt int             `yaml:"interval"`
	Interval    time.Duration   `yaml:"-"`
	Flag        FlagConfig      `yaml:"-"`
	SHT30       SensorConfig    `yaml:"sht30"`
	QMP6988     SensorConfig    `yaml:"qmp6988"`
	Debug       DebugConfig     `yaml:"debug"`
	Webserver   WebserverConfig `yaml:"webserver"`
	MQTT        MQTTConfig      `yaml:"mqtt"`
}

// FlagConfig defines the configured command line flags.
type FlagConfig struct {
	LogLevel   string
	ConfigFile string
}

// SensorConfig defines one sensor instance: the 7-bit device address and the
// measurement settle delay in milliseconds.
type SensorConfig struct {
	Address  uint8         `yaml:"address"`
	DelayInt int           `yaml:"delay"`
	Delay    time.Duration `yaml:"-"`
}

// WebserverConfig defines the webserver and webservice configuration.
type WebserverConfig struct {
	URL         string          `yaml:"url"`
	Webservices map[string]bool `yaml:"webservices"`
}

// MQTTConfig defines the mqtt client configuration. A measurement is
// published when IntervalInt seconds have elapsed since the last publish or
// when one of the delta thresholds is exceeded.
type MQTTConfig struct {
	Connection    string        `yaml:"connection"`
	IntervalInt   int           `yaml:"interval"`
	Interval      time.Duration `yaml:"-"`
	Topic         string        `yaml:"topic"`
	DeltaKelvin   float64       `yaml:"deltakelvin"`
	DeltaPascal   float64       `yaml:"deltapascal"`
	DeltaHumidity float64       `yaml:"deltahumidity"`
}

// DebugConfig defines the log configuration.
type DebugConfig struct {
	File       io.WriteCloser `yaml:"-"`
	Flag       int            `yaml:"-"`
	FlagString string         `yaml:"flag"`
	FileString string         `yaml:"file"`
}

// NewConfig returns the application defaults: the ENV-III unit on bus 1 with
// its factory addresses, read every 5 seconds.
func NewConfig() *Config {
	return &Config{
		Bus:         1,
		IntervalInt: 5,
		Flag:        FlagConfig{},
		SHT30: SensorConfig{
			Address:  0x44,
			DelayInt: 20,
		},
		QMP6988: SensorConfig{
			Address:  0x70,
			DelayInt: 10,
		},
		Debug: DebugConfig{
			FileString: "stderr",
			FlagString: "standard",
		},
		Webserver: WebserverConfig{
			URL: "http://0.0.0.0:4000",
			Webservices: map[string]bool{
				"version": true,
				"health":  true,
				"data":    true,
			},
		},
		MQTT: MQTTConfig{
			Connection:    "tcp://127.0.0.1:1883",
			IntervalInt:   60,
			Topic:         "/home/envlog",
			DeltaKelvin:   0.5,
			DeltaPascal:   100,
			DeltaHumidity: 2,
		},
	}
}

// LoadConfig reads the configuration file named by the config flag and
// finishes the derived fields.
func (c *Config) LoadConfig() error {
	if err := c.readConfigFile(); err != nil {
		return fmt.Errorf("error reading config file %q: %w", c.Flag.ConfigFile, err)
	}

	if c.Flag.LogLevel != "" {
		c.Debug.FlagString = c.Flag.LogLevel
	}
	if err := c.setDebugConfig(); err != nil {
		return fmt.Errorf("unable to open debug file %q: %w", c.Debug.FileString, err)
	}

	c.Interval = time.Duration(c.IntervalInt) * time.Second
	c.AlertBounce = time.Duration(c.AlertBounceInt) * time.Millisecond
	c.MQTT.Interval = time.Duration(c.MQTT.IntervalInt) * time.Second
	c.SHT30.Delay = time.Duration(c.SHT30.DelayInt) * time.Millisecond
	c.QMP6988.Delay = time.Duration(c.QMP6988.DelayInt) * time.Millisecond

	return nil
}

func (c *Config) readConfigFile() error {
	file, err := os.Open(c.Flag.ConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	if err = decoder.Decode(c); err != nil {
		return err
	}

	return nil
}

func (c *Config) setDebugConfig() (err error) {
	switch c.Debug.FlagString {
	case "trace", "full":
		c.Debug.Flag = debug.Full
	case "debug":
		c.Debug.Flag = debug.Warning | debug.Info | debug.Error | debug.Fatal | debug.Debug
	case "standard":
		c.Debug.Flag = debug.Standard
	}

	switch c.Debug.FileString {
	case "stderr":
		c.Debug.File = os.Stderr
	case "stdout":
		c.Debug.File = os.Stdout
	default:
		if c.Debug.File, err = os.OpenFile(c.Debug.FileString, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666); err != nil {
			return
		}
	}

	return
}
