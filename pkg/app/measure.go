package app

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"envlog/pkg/mqtt"

	"github.com/womat/debug"
)

// Measurements is one complete reading of the ENV-III unit.
type Measurements struct {
	Time time.Time `json:"time"`
	// Temperature is the SHT30 temperature in °C.
	Temperature float64 `json:"temperature"`
	// Humidity is the relative humidity in %RH.
	Humidity float64 `json:"humidity"`
	// Pressure is the barometric pressure in Pa.
	Pressure float64 `json:"pressure"`
	// PressureTemperature is the QMP6988 die temperature in °C.
	PressureTemperature float64 `json:"pressureTemperature"`
}

// measure reads both sensors in an endless loop, saves the readings to the
// app main structure and forwards them to the mqtt delta filter.
func (app *App) measure() {
	for {
		m, err := app.readSensors()
		if err != nil {
			debug.ErrorLog.Println(err)
			time.Sleep(time.Second)
			continue
		}

		debug.DebugLog.Printf("measurements: %+v", m)
		app.data.Lock()
		app.data.measurements = m
		app.data.Unlock()

		app.publishMeasurements(m)
		time.Sleep(app.config.Interval)
	}
}

// readSensors runs one measurement cycle on each sensor. The cycles are
// sequential, both devices share one bus.
func (app *App) readSensors() (Measurements, error) {
	temperature, humidity, err := app.sht30.Read()
	if err != nil {
		return Measurements{}, fmt.Errorf("sht30: %w", err)
	}

	pressure, pressureTemperature, err := app.qmp6988.Read()
	if err != nil {
		return Measurements{}, fmt.Errorf("qmp6988: %w", err)
	}

	return Measurements{
		Time:                time.Now(),
		Temperature:         temperature,
		Humidity:            humidity,
		Pressure:            pressure,
		PressureTemperature: pressureTemperature,
	}, nil
}

// publishMeasurements sends a reading to the mqtt broker when the publish
// interval has elapsed or one of the configured delta thresholds is
// exceeded since the last published reading.
func (app *App) publishMeasurements(m Measurements) {
	app.mqttData.Lock()
	defer app.mqttData.Unlock()

	last := app.mqttData.measurements

	if !last.Time.IsZero() {
		deltaT := m.Time.Sub(last.Time)
		deltaK := math.Abs(m.Temperature - last.Temperature)
		if t := math.Abs(m.PressureTemperature - last.PressureTemperature); t > deltaK {
			deltaK = t
		}
		deltaP := math.Abs(m.Pressure - last.Pressure)
		deltaH := math.Abs(m.Humidity - last.Humidity)

		if deltaT < app.config.MQTT.Interval &&
			deltaK < app.config.MQTT.DeltaKelvin &&
			deltaP < app.config.MQTT.DeltaPascal &&
			deltaH < app.config.MQTT.DeltaHumidity {
			return
		}
	}

	app.sendMQTT(app.config.MQTT.Topic, m)
	app.mqttData.measurements = m
}

// sendMQTT hands a message struct to the mqtt service channel.
func (app *App) sendMQTT(topic string, message interface{}) {
	go func(t string, r interface{}) {
		debug.TraceLog.Printf("prepare mqtt message %v %v", t, r)

		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			debug.ErrorLog.Printf("sendMQTT marshal: %v", err)
			return
		}

		app.mqtt.C <- mqtt.Message{
			Qos:      0,
			Retained: true,
			Topic:    t,
			Payload:  b,
		}
	}(topic, message)
}
