// Package app wires the envlog application: the ENV-III sensor drivers, the
// measurement loop, the mqtt client and the web server.
package app

import (
	"net/url"
	"sync"

	"envlog/pkg/app/config"
	"envlog/pkg/i2c"
	"envlog/pkg/mqtt"
	"envlog/pkg/qmp6988"
	"envlog/pkg/raspberry"
	"envlog/pkg/sensor"
	"envlog/pkg/sht30"

	"github.com/gofiber/fiber/v2"
	"github.com/womat/debug"
)

// App is the main application struct, this is where the application is
// wired up.
type App struct {
	// web is the fiber web framework instance
	web *fiber.App

	// config is the application configuration
	config *config.Config

	// urlParsed contains the parsed Config.Webserver.URL parameter
	urlParsed *url.URL

	// mqtt is the handler to the mqtt broker
	mqtt *mqtt.Handler

	// sht30 measures temperature and humidity
	sht30 sensor.TemperatureHumidity

	// qmp6988 measures barometric pressure
	qmp6988 sensor.PressureTemperature

	// gpio is the handler to the gpio chip, nil unless an alert line is
	// configured
	gpio raspberry.GPIO

	// alertPin is the watched SHT30 alert line
	alertPin raspberry.Pin

	// data is the last complete reading of both sensors
	data struct {
		sync.RWMutex
		measurements Measurements
	}

	// mqttData is the last reading published to the broker
	mqttData struct {
		sync.Mutex
		measurements Measurements
	}
}

// New checks the web server URL and initializes the main app structure.
func New(cfg *config.Config) (*App, error) {
	u, err := url.Parse(cfg.Webserver.URL)
	if err != nil {
		debug.ErrorLog.Printf("Error parsing url %q: %s", cfg.Webserver.URL, err.Error())
		return &App{}, err
	}

	return &App{
		config:    cfg,
		urlParsed: u,
		web:       fiber.New(),
		mqtt:      mqtt.New(),
	}, nil
}

// Run initializes the application and starts its services.
func (app *App) Run() error {
	if err := app.init(); err != nil {
		return err
	}

	go app.mqtt.Service()
	go app.runWebServer()
	go app.measure()

	if app.alertPin != nil {
		go app.watchAlert()
	}

	return nil
}

// init builds the sensor drivers and connects the collaborators.
func (app *App) init() (err error) {
	if app.config.Fake {
		debug.InfoLog.Print("using simulated sensors")
		app.sht30 = sht30.NewFake(sht30.FakeConfig{})
		app.qmp6988 = qmp6988.NewFake(qmp6988.FakeConfig{})
	} else {
		app.sht30 = sht30.New(sht30.Config{
			Bus:     app.config.Bus,
			Address: app.config.SHT30.Address,
			Delay:   app.config.SHT30.Delay,
			Factory: i2c.Open,
		})
		app.qmp6988 = qmp6988.New(qmp6988.Config{
			Bus:     app.config.Bus,
			Address: app.config.QMP6988.Address,
			Delay:   app.config.QMP6988.Delay,
			Factory: i2c.Open,
		})
	}

	if app.config.AlertGpio > 0 {
		if app.gpio, err = raspberry.Open(); err != nil {
			debug.ErrorLog.Printf("can't open gpio: %v", err)
			return err
		}
		if app.alertPin, err = app.gpio.NewPin(app.config.AlertGpio, "pullup", app.config.AlertBounce); err != nil {
			debug.ErrorLog.Printf("can't open pin: %v", err)
			return err
		}
	}

	if err = app.mqtt.Connect(app.config.MQTT.Connection); err != nil {
		debug.ErrorLog.Printf("can't open mqtt broker: %v", err)
		return err
	}

	// initDefaultRoutes should always be called last because it may access
	// collaborators initialized above
	app.initDefaultRoutes()

	return nil
}

// Close releases the mqtt connection and the gpio resources.
func (app *App) Close() error {
	if app.mqtt != nil {
		_ = app.mqtt.Disconnect()
	}
	if app.alertPin != nil {
		_ = app.alertPin.Close()
	}
	if app.gpio != nil {
		_ = app.gpio.Close()
	}
	return nil
}
