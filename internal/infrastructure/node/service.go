package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/rpcclient"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/pocx-network/pocxwallet/internal/core/ports"
	"github.com/pocx-network/pocxwallet/pkg/circuitbreaker"
)

const defaultRequestsPerSecond = 10

var (
	// ErrNullRPCHost ...
	ErrNullRPCHost = errors.New("rpc host must not be null")
	// ErrImportRejected ...
	ErrImportRejected = errors.New("node rejected the descriptor import")
)

// ServiceOpts is the struct given to the NewService method
type ServiceOpts struct {
	RPCHost           string
	RPCUser           string
	RPCPass           string
	RequestsPerSecond int
}

func (o ServiceOpts) validate() error {
	if len(o.RPCHost) <= 0 {
		return ErrNullRPCHost
	}
	return nil
}

type service struct {
	client  *rpcclient.Client
	breaker *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewService returns a NodeService talking JSON-RPC to a PoCX full node
// over HTTP POST. Requests are paced by a client-side rate limiter and
// guarded by a circuit breaker so an unhealthy node fails fast instead
// of hanging every command.
func NewService(opts ServiceOpts) (ports.NodeService, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         opts.RPCHost,
		User:         opts.RPCUser,
		Pass:         opts.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, err
	}

	requestsPerSecond := opts.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}

	return &service{
		client:  client,
		breaker: circuitbreaker.NewCircuitBreaker("node"),
		limiter: ratelimit.New(requestsPerSecond),
	}, nil
}

func (s *service) Ping(ctx context.Context) error {
	_, err := s.do(ctx, "getblockchaininfo")
	return err
}

type importDescriptorRequest struct {
	Desc      string      `json:"desc"`
	Timestamp interface{} `json:"timestamp"`
	Label     string      `json:"label,omitempty"`
}

type importDescriptorResult struct {
	Success  bool     `json:"success"`
	Warnings []string `json:"warnings,omitempty"`
	Error    *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *service) ImportDescriptor(
	ctx context.Context, descriptor, label string, rescan bool,
) error {
	// "now" skips the chain rescan, a timestamp of 0 forces a scan of
	// the whole history.
	timestamp := interface{}("now")
	if rescan {
		timestamp = 0
	}

	requests := []importDescriptorRequest{{
		Desc:      descriptor,
		Timestamp: timestamp,
		Label:     label,
	}}

	raw, err := s.do(ctx, "importdescriptors", requests)
	if err != nil {
		return err
	}

	var results []importDescriptorResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return fmt.Errorf("unexpected importdescriptors reply: %w", err)
	}

	for _, result := range results {
		for _, warning := range result.Warnings {
			log.Warnf("importdescriptors: %s", warning)
		}
		if !result.Success {
			if result.Error != nil {
				return fmt.Errorf("%w: %s", ErrImportRejected, result.Error.Message)
			}
			return ErrImportRejected
		}
	}
	return nil
}

func (s *service) Close() {
	s.client.Shutdown()
}

// do sends one JSON-RPC request through the limiter and the breaker.
// The rpc client has no context support, so cancellation is only
// checked up front.
func (s *service) do(
	ctx context.Context, method string, params ...interface{},
) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.limiter.Take()

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		rawParam, err := json.Marshal(param)
		if err != nil {
			return nil, err
		}
		rawParams = append(rawParams, rawParam)
	}

	reply, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.RawRequest(method, rawParams)
	})
	if err != nil {
		return nil, err
	}
	return reply.(json.RawMessage), nil
}
