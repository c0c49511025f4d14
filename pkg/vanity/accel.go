package vanity

import "errors"

// acceleratedWorkerFactor scales the worker pool when a batch
// derivation accelerator claims the workload.
const acceleratedWorkerFactor = 64

var errAccelerationUnavailable = errors.New(
	"no supported accelerator found on this machine",
)

// probeAccelerator checks for an accelerated batch-derivation backend.
// The open build ships without one and always reports unavailable; the
// var seam lets an actual backend take over the probe.
var probeAccelerator = func() error {
	return errAccelerationUnavailable
}
