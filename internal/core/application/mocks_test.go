package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pocx-network/pocxwallet/pkg/vanity"
)

// **** NodeService ****

type mockNodeService struct {
	mock.Mock
}

func (m *mockNodeService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockNodeService) ImportDescriptor(
	ctx context.Context, descriptor, label string, rescan bool,
) error {
	args := m.Called(ctx, descriptor, label, rescan)
	return args.Error(0)
}

func (m *mockNodeService) Close() {
	m.Called()
}

// **** vanity engine ****

type mockVanityEngine struct {
	mock.Mock
}

func (m *mockVanityEngine) Search(
	ctx context.Context, opts vanity.SearchOpts,
) (*vanity.Result, error) {
	args := m.Called(ctx, opts)

	var res *vanity.Result
	if a := args.Get(0); a != nil {
		res = a.(*vanity.Result)
	}
	return res, args.Error(1)
}
