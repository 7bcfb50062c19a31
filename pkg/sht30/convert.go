package sht30

// RawToCelsius converts a raw temperature channel to °C using the datasheet
// formula -45 + 175·raw/65535. Total over the input domain; out-of-spec
// sensor output is not clamped here, that would mask fault conditions.
func RawToCelsius(raw uint16) float64 {
	return -45 + 175*float64(raw)/65535
}

// RawToHumidity converts a raw humidity channel to %RH using the datasheet
// formula 100·raw/65535. Total over the input domain, no clamping.
func RawToHumidity(raw uint16) float64 {
	return 100 * float64(raw) / 65535
}
