package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var nodestatus = cli.Command{
	Name:   "nodestatus",
	Usage:  "check that the configured node answers RPCs",
	Action: nodeStatusAction,
}

func nodeStatusAction(_ *cli.Context) error {
	nodeSvc, err := config.GetNodeService()
	if err != nil {
		return err
	}
	if nodeSvc == nil {
		return application.ErrNodeNotConfigured
	}
	defer nodeSvc.Close()

	if err := nodeSvc.Ping(context.Background()); err != nil {
		return err
	}

	fmt.Println("node is reachable")
	return nil
}
