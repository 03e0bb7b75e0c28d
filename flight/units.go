package flight

// PixelsPerMeter is the empirical screen scale: 74.44 px of climb is one metre.
const PixelsPerMeter = 74.44

// pixelsPerCentimeter is the divisor used by the on-screen altitude readout.
const pixelsPerCentimeter = 0.7444

// Meters converts a pixel height to metres.
func Meters(px float64) float64 { return px / PixelsPerMeter }

// Centimeters converts a pixel height to centimetres.
func Centimeters(px float64) float64 { return px / pixelsPerCentimeter }
