package qmp6988

// Compensation coefficients, datasheet typical values. The per-device OTP
// calibration registers are not read; readings carry the corresponding
// part-to-part tolerance.
const (
	coeffA0  = 0.0
	coeffA1  = -6.30e-03
	coeffA2  = -1.90e-11
	coeffB00 = 0.0
	coeffBT1 = 1.00e-01
	coeffBT2 = 1.20e-08
	coeffBP1 = 3.30e-02
	coeffB11 = 2.10e-07
	coeffBP2 = -6.30e-10
	coeffB12 = 2.90e-13
	coeffB21 = 2.10e-15
	coeffBP3 = 1.30e-16
)

// RawToCelsius converts a raw 24-bit temperature channel to °C using the
// datasheet polynomial Tr = a0 + a1·Dt + a2·Dt², T = Tr/256 with
// Dt = raw − 2²³. Pure and total over the input domain, no clamping.
func RawToCelsius(raw uint32) float64 {
	return compensatedTemperature(raw) / 256
}

// RawToPascal converts the raw 24-bit pressure channel to Pa. The datasheet
// polynomial is evaluated at the compensated temperature, so the raw
// temperature channel of the same frame is required. Pure and total, no
// clamping.
func RawToPascal(rawPressure, rawTemperature uint32) float64 {
	tr := compensatedTemperature(rawTemperature)
	dp := float64(rawPressure) - 1<<23

	return coeffB00 +
		coeffBT1*tr +
		coeffBP1*dp +
		coeffB11*dp*tr +
		coeffBT2*tr*tr +
		coeffBP2*dp*dp +
		coeffB12*dp*tr*tr +
		coeffB21*dp*dp*tr +
		coeffBP3*dp*dp*dp
}

// compensatedTemperature is the datasheet's Tr term, 256ths of a °C.
func compensatedTemperature(raw uint32) float64 {
	dt := float64(raw) - 1<<23
	return coeffA0 + coeffA1*dt + coeffA2*dt*dt
}
