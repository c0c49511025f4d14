package vanity

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/pocx-network/pocxwallet/pkg/pocxnet"
	"github.com/pocx-network/pocxwallet/pkg/wallet"
)

// foldEvery is how many locally counted attempts a worker folds into the
// shared counter at a time. Batching keeps the hot loop away from the
// shared cache line.
const foldEvery = 64

// ServiceOpts is the struct given to the NewService method. Zero values
// select the defaults: one worker per logical CPU and the default
// progress interval.
type ServiceOpts struct {
	NumWorkers       int
	ProgressInterval time.Duration
}

func (o ServiceOpts) validate() error {
	if o.NumWorkers < 0 {
		return ErrInvalidNumWorkers
	}
	if o.ProgressInterval < 0 {
		return ErrInvalidProgressInterval
	}
	return nil
}

type service struct {
	numWorkers       int
	progressInterval time.Duration

	probeOnce sync.Once
	probeErr  error
}

// NewService returns a new vanity search engine. Engines hold no search
// state and can run any number of concurrent searches.
func NewService(opts ServiceOpts) (Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	numWorkers := opts.NumWorkers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	progressInterval := opts.ProgressInterval
	if progressInterval == 0 {
		progressInterval = DefaultProgressInterval
	}

	return &service{
		numWorkers:       numWorkers,
		progressInterval: progressInterval,
	}, nil
}

func (s *service) Search(ctx context.Context, opts SearchOpts) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pattern := normalizePattern(opts.Pattern)
	warnUnmatchable(pattern, opts.Testnet)

	numWorkers := s.numWorkers
	if opts.Accelerated {
		if err := s.probe(); err != nil {
			log.WithError(err).Debug(
				"accelerated search unavailable, falling back to cpu workers",
			)
		} else {
			numWorkers *= acceleratedWorkerFactor
		}
	}

	searchLog := log.WithField("search_id", randstr.Hex(4))
	searchLog.WithFields(log.Fields{
		"pattern": pattern,
		"workers": numWorkers,
	}).Debugf(
		"starting vanity search, %s attempts expected",
		EstimateAttempts(pattern).StringFixed(0),
	)

	job := &searchJob{
		pattern: pattern,
		testnet: opts.Testnet,
		found:   make(chan *Result, 1),
		done:    make(chan struct{}),
	}

	wg := &sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			job.run(ctx)
		}()
	}

	startTime := time.Now()
	reporterDone := make(chan struct{})
	go s.report(ctx, job, opts.OnProgress, startTime, reporterDone)

	finish := func() {
		job.stop()
		wg.Wait()
		<-reporterDone
	}

	select {
	case result := <-job.found:
		finish()
		result.Attempts = atomic.LoadUint64(&job.attempts)
		result.Elapsed = time.Since(startTime)
		searchesMetric.WithLabelValues("found").Inc()
		searchLog.WithFields(log.Fields{
			"attempts": result.Attempts,
			"elapsed":  result.Elapsed.Round(time.Millisecond).String(),
		}).Debug("vanity search finished")
		return result, nil
	case <-ctx.Done():
		finish()
		searchesMetric.WithLabelValues("cancelled").Inc()
		searchLog.WithField(
			"attempts", atomic.LoadUint64(&job.attempts),
		).Debug("vanity search cancelled")
		return nil, ctx.Err()
	}
}

func (s *service) probe() error {
	s.probeOnce.Do(func() {
		s.probeErr = probeAccelerator()
	})
	return s.probeErr
}

func (s *service) report(
	ctx context.Context, job *searchJob,
	onProgress func(Progress), startTime time.Time, done chan<- struct{},
) {
	defer close(done)

	ticker := time.NewTicker(s.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-job.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if onProgress == nil {
				continue
			}
			elapsed := time.Since(startTime)
			attempts := atomic.LoadUint64(&job.attempts)
			rate := float64(0)
			if secs := elapsed.Seconds(); secs > 0 {
				rate = float64(attempts) / secs
			}
			onProgress(Progress{
				Attempts: attempts,
				Rate:     rate,
				Elapsed:  elapsed,
			})
		}
	}
}

type searchJob struct {
	pattern  string
	testnet  bool
	attempts uint64
	found    chan *Result
	done     chan struct{}
	stopOnce sync.Once
}

// stop signals every worker and the reporter to wind down. Safe to call
// any number of times from any goroutine.
func (j *searchJob) stop() {
	j.stopOnce.Do(func() {
		close(j.done)
	})
}

// run is one worker's candidate loop. The first worker to find a match
// claims the single result slot and stops the job; everyone else drops
// out at the next iteration.
func (j *searchJob) run(ctx context.Context) {
	var local uint64
	defer func() {
		if remainder := local % foldEvery; remainder > 0 {
			atomic.AddUint64(&j.attempts, remainder)
			attemptsMetric.Add(float64(remainder))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.done:
			return
		default:
		}

		candidate, err := wallet.NewWallet(wallet.NewWalletOpts{
			WordCount: 12,
		})
		if err != nil {
			log.WithError(err).Error("vanity worker cannot draw entropy")
			return
		}

		addr, err := candidate.DeriveAddress(wallet.DeriveAddressOpts{
			Testnet: j.testnet,
		})
		if err != nil {
			log.WithError(err).Error("vanity worker cannot derive")
			return
		}

		local++
		if local%foldEvery == 0 {
			atomic.AddUint64(&j.attempts, foldEvery)
			attemptsMetric.Add(foldEvery)
		}

		if !strings.Contains(addr, j.pattern) {
			continue
		}

		mnemonic, err := candidate.Mnemonic()
		if err != nil {
			log.WithError(err).Error("vanity worker cannot read back mnemonic")
			return
		}
		wif, err := candidate.DeriveWIF(wallet.DeriveWIFOpts{
			Testnet: j.testnet,
		})
		if err != nil {
			log.WithError(err).Error("vanity worker cannot encode wif")
			return
		}

		select {
		case j.found <- &Result{
			Mnemonic: mnemonic,
			Address:  addr,
			WIF:      wif,
		}:
			j.stop()
		default:
		}
		return
	}
}

func normalizePattern(pattern string) string {
	return strings.ToLower(strings.TrimSpace(pattern))
}

// warnUnmatchable flags pattern characters that no encoded address can
// contain. The search still runs: it will simply never finish on its
// own, which is the caller's call to make.
func warnUnmatchable(pattern string, testnet bool) {
	matchable := pocxnet.Bech32Charset + pocxnet.HRP(testnet) + "1"

	var unmatchable []rune
	for _, r := range pattern {
		if !strings.ContainsRune(matchable, r) {
			unmatchable = append(unmatchable, r)
		}
	}
	if len(unmatchable) > 0 {
		log.Warnf(
			"pattern characters %q can never appear in an address, "+
				"the search will not terminate unless cancelled",
			string(unmatchable),
		)
	}
}
