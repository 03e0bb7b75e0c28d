package telemetry

// Recorder accumulates the samples of one flight and streams them to an
// OutputManager when one is attached.
type Recorder struct {
	out     *OutputManager
	samples []FlightSample
}

// NewRecorder creates a recorder. out may be nil (no file output).
func NewRecorder(out *OutputManager) *Recorder {
	return &Recorder{out: out}
}

// Record appends a sample and writes it to flight.csv.
func (r *Recorder) Record(s FlightSample) error {
	r.samples = append(r.samples, s)
	return r.out.WriteSample(s)
}

// Samples returns the recorded samples.
func (r *Recorder) Samples() []FlightSample {
	return r.samples
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.samples)
}

// Last returns the most recent sample and whether there is one.
func (r *Recorder) Last() (FlightSample, bool) {
	if len(r.samples) == 0 {
		return FlightSample{}, false
	}
	return r.samples[len(r.samples)-1], true
}

// Summary summarizes everything recorded so far.
func (r *Recorder) Summary() Summary {
	return Summarize(r.samples)
}
