package stats

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const gigabyte = 1 << 30

// EnableRuntimeStatistics enables a go routine that periodically prints
// memory usage and the number of go routines of the process. Useful for
// keeping an eye on long running searches. When the context ends the
// collected prometheus metrics are dumped to dumpPath.
func EnableRuntimeStatistics(
	ctx context.Context, interval time.Duration, dumpPath string,
) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				LogMemoryStatistics()
				LogNumOfRoutines()
			case <-ctx.Done():
				if err := DumpPrometheusMetrics(dumpPath); err != nil {
					log.WithError(err).Warn("failed to dump prometheus metrics")
				}
				return
			}
		}
	}()
}

// toGigabytes returns given memory in bytes to gigabytes.
func toGigabytes(bytes uint64) float64 {
	return float64(bytes) / gigabyte
}

// LogMemoryStatistics logs memory statistics using go runtime library.
func LogMemoryStatistics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	log.Infof(
		"Total allocated: %.3fGB, Heap allocated: %.3fGB, "+
			"Allocated objects count: %v, Freed objects count: %v",
		toGigabytes(memStats.TotalAlloc),
		toGigabytes(memStats.HeapAlloc),
		memStats.Mallocs,
		memStats.Frees,
	)
}

// LogNumOfRoutines logs the number of go routines currently running.
func LogNumOfRoutines() {
	log.Infof("Num of go routines: %v", runtime.NumGoroutine())
}

// DumpPrometheusMetrics appends the default prometheus registry's
// metrics, the search counters included, to the file at the given path.
func DumpPrometheusMetrics(path string) error {
	file, err := os.OpenFile(
		path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return err
	}
	defer file.Close()

	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	for _, metricFamily := range metricFamilies {
		if _, err := writer.WriteString(
			metricFamily.String() + "\n",
		); err != nil {
			return err
		}
	}
	return writer.Flush()
}
