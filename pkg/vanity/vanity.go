// Package vanity implements the brute force search for addresses that
// contain a wanted substring. Candidate wallets are generated from fresh
// entropy and thrown away until one of them encodes to a matching
// address; the winner is returned with the full seed material needed to
// restore it.
package vanity

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProgressInterval is the progress reporting cadence used when
// the service is created without an explicit one.
const DefaultProgressInterval = time.Second

// addressSymbols is the symbol count of the data part of an encoded
// address: 1 version symbol, 32 program symbols, 6 checksum symbols.
const addressSymbols = 39

var (
	// ErrEmptyPattern ...
	ErrEmptyPattern = errors.New("pattern must not be empty")
	// ErrInvalidNumWorkers ...
	ErrInvalidNumWorkers = errors.New("number of workers must not be negative")
	// ErrInvalidProgressInterval ...
	ErrInvalidProgressInterval = errors.New(
		"progress interval must not be negative",
	)
)

// Result is the outcome of a completed search: the winning wallet's seed
// material along with the work it took to find it.
type Result struct {
	Mnemonic string
	Address  string
	WIF      string
	Attempts uint64
	Elapsed  time.Duration
}

// Progress is a point-in-time snapshot of a running search. Rate is in
// attempts per second since the search started.
type Progress struct {
	Attempts uint64
	Rate     float64
	Elapsed  time.Duration
}

// SearchOpts is the struct given to the Search method. The pattern is
// matched case insensitively anywhere in the encoded address. OnProgress,
// when set, is invoked from a single goroutine at the service's
// progress interval.
type SearchOpts struct {
	Pattern     string
	Testnet     bool
	Accelerated bool
	OnProgress  func(Progress)
}

func (o SearchOpts) validate() error {
	if len(normalizePattern(o.Pattern)) <= 0 {
		return ErrEmptyPattern
	}
	return nil
}

// Service is the interface of the vanity search engine
type Service interface {
	// Search runs candidate generation until an address contains the
	// pattern or the context ends. It returns either a result or the
	// context's error, never both.
	Search(ctx context.Context, opts SearchOpts) (*Result, error)
}

// EstimateAttempts returns the expected number of candidates to derive
// before one matches the pattern, assuming uniformly distributed
// address symbols and counting every position the pattern can occupy.
func EstimateAttempts(pattern string) decimal.Decimal {
	pattern = normalizePattern(pattern)
	if len(pattern) <= 0 {
		return decimal.Zero
	}

	positions := addressSymbols - len(pattern) + 1
	if positions < 1 {
		positions = 1
	}

	combinations := decimal.NewFromInt(32).Pow(
		decimal.NewFromInt(int64(len(pattern))),
	)
	return combinations.Div(decimal.NewFromInt(int64(positions))).Ceil()
}
