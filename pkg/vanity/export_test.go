package vanity

// SetAccelerationProbe swaps the accelerator probe for the duration of a
// test and returns the function restoring the real one.
func SetAccelerationProbe(probe func() error) (restore func()) {
	previous := probeAccelerator
	probeAccelerator = probe
	return func() { probeAccelerator = previous }
}

// AccelerationUnavailable exposes the probe's sentinel to tests.
var AccelerationUnavailable = errAccelerationUnavailable
