package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var listwallets = cli.Command{
	Name:   "list",
	Usage:  "list all stored wallets, oldest first",
	Action: listWalletsAction,
}

func listWalletsAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := walletSvc.ListWallets(context.Background())
	if err != nil {
		return err
	}

	printJSON(wallets)
	return nil
}
