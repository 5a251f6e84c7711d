package uncert

// HistogramData is the hand-off to an external plotter for a repeated
// measurement: the raw samples plus markers at the mean and one standard
// deviation either side. No rendering is done here.
type HistogramData struct {
	Samples []float64
	Mean    float64
	Std     float64
}

// Histogram returns the plotting hand-off for a sample-built measurement.
// Fails with an InputError for single readings and demoted measurements,
// which no longer carry raw sample data.
func (m *Measured) Histogram() (HistogramData, error) {
	raw, ok := m.RawData()
	if !ok {
		return HistogramData{}, &InputError{
			Code:    ErrCodeInvalidInput,
			Message: "measurement has no raw sample data",
		}
	}
	return HistogramData{
		Samples: raw,
		Mean:    m.val,
		Std:     m.unc,
	}, nil
}
