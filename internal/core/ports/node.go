package ports

import "context"

// NodeService is the interface to a PoCX full node with wallet support.
type NodeService interface {
	// Ping checks that the node answers RPCs.
	Ping(ctx context.Context) error
	// ImportDescriptor registers a descriptor with the node's wallet.
	// With rescan set the node scans the whole chain history for
	// transactions involving it, otherwise only new blocks are watched.
	ImportDescriptor(ctx context.Context, descriptor, label string, rescan bool) error
	// Close releases the underlying RPC connection.
	Close()
}
