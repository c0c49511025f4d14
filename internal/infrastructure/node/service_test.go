package node_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocx-network/pocxwallet/internal/core/ports"
	"github.com/pocx-network/pocxwallet/internal/infrastructure/node"
)

type rpcCall struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     interface{}       `json:"id"`
}

// fakeNode is a minimal JSON-RPC endpoint recording the calls it serves.
type fakeNode struct {
	t       *testing.T
	calls   []rpcCall
	replies map[string]string
}

func (f *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var call rpcCall
	assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&call))
	f.calls = append(f.calls, call)

	reply, ok := f.replies[call.Method]
	if !ok {
		reply = `null`
	}

	response := map[string]interface{}{
		"result": json.RawMessage(reply),
		"error":  nil,
		"id":     call.ID,
	}
	assert.NoError(f.t, json.NewEncoder(w).Encode(response))
}

func newFakeNodeService(
	t *testing.T, replies map[string]string,
) (*fakeNode, ports.NodeService) {
	t.Helper()

	fake := &fakeNode{t: t, replies: replies}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	svc, err := node.NewService(node.ServiceOpts{
		RPCHost: strings.TrimPrefix(server.URL, "http://"),
		RPCUser: "user",
		RPCPass: "pass",
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return fake, svc
}

func TestPing(t *testing.T) {
	fake, svc := newFakeNodeService(t, map[string]string{
		"getblockchaininfo": `{"chain":"main","blocks":100}`,
	})

	require.NoError(t, svc.Ping(context.Background()))
	require.Len(t, fake.calls, 1)
	require.Equal(t, "getblockchaininfo", fake.calls[0].Method)
}

func TestPingHonoursCancelledContext(t *testing.T) {
	fake, svc := newFakeNodeService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Ping(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, fake.calls, 0)
}

func TestImportDescriptor(t *testing.T) {
	fake, svc := newFakeNodeService(t, map[string]string{
		"importdescriptors": `[{"success":true,"warnings":["Range not given"]}]`,
	})

	err := svc.ImportDescriptor(
		context.Background(), "wpkh(cTest)#qqqqqqqq", "vanity", false,
	)
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)

	var requests []struct {
		Desc      string      `json:"desc"`
		Timestamp interface{} `json:"timestamp"`
		Label     string      `json:"label"`
	}
	require.Len(t, fake.calls[0].Params, 1)
	require.NoError(t, json.Unmarshal(fake.calls[0].Params[0], &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "wpkh(cTest)#qqqqqqqq", requests[0].Desc)
	assert.Equal(t, "now", requests[0].Timestamp)
	assert.Equal(t, "vanity", requests[0].Label)
}

func TestImportDescriptorWithRescan(t *testing.T) {
	fake, svc := newFakeNodeService(t, map[string]string{
		"importdescriptors": `[{"success":true}]`,
	})

	err := svc.ImportDescriptor(
		context.Background(), "wpkh(cTest)#qqqqqqqq", "", true,
	)
	require.NoError(t, err)

	var requests []struct {
		Timestamp interface{} `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(fake.calls[0].Params[0], &requests))
	require.Equal(t, float64(0), requests[0].Timestamp)
}

func TestImportDescriptorRejected(t *testing.T) {
	_, svc := newFakeNodeService(t, map[string]string{
		"importdescriptors": `[{"success":false,"error":{"code":-4,"message":"Descriptor already exists"}}]`,
	})

	err := svc.ImportDescriptor(
		context.Background(), "wpkh(cTest)#qqqqqqqq", "", false,
	)
	require.ErrorIs(t, err, node.ErrImportRejected)
	require.Contains(t, err.Error(), "Descriptor already exists")
}

func TestFailingNewService(t *testing.T) {
	svc, err := node.NewService(node.ServiceOpts{})
	require.Nil(t, svc)
	require.EqualError(t, err, node.ErrNullRPCHost.Error())
}
