package app

import (
	"encoding/json"
	"time"

	"envlog/pkg/mqtt"
	"envlog/pkg/port"

	"github.com/womat/debug"
)

// alertMessage is published when the SHT30 alert line fires.
type alertMessage struct {
	Time time.Time `json:"time"`
	// Active is true on a falling edge: the line is open drain, active low.
	Active       bool         `json:"active"`
	Measurements Measurements `json:"measurements"`
}

// watchAlert waits for edges on the SHT30 alert line and publishes them
// together with the last complete reading.
func (app *App) watchAlert() {
	for event := range app.alertPin.Events() {
		active := event.Type == port.FallingEdge

		app.data.RLock()
		m := app.data.measurements
		app.data.RUnlock()

		debug.WarningLog.Printf("sht30 alert line changed, active: %v", active)

		b, err := json.Marshal(alertMessage{
			Time:         time.Now(),
			Active:       active,
			Measurements: m,
		})
		if err != nil {
			debug.ErrorLog.Printf("alert marshal: %v", err)
			continue
		}

		app.mqtt.C <- mqtt.Message{
			Qos:      0,
			Retained: false,
			Topic:    app.config.MQTT.Topic + "/alert",
			Payload:  b,
		}
	}
}
