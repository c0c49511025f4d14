package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var nodeimport = cli.Command{
	Name:  "nodeimport",
	Usage: "register the descriptor of one key with the configured node as watch-only",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "the name of the wallet",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "the passphrase the wallet is encrypted with",
			Value: "",
		},
		&cli.UintFlag{
			Name:  "account",
			Usage: "the account of the derivation path",
			Value: 0,
		},
		&cli.UintFlag{
			Name:  "index",
			Usage: "the address index of the derivation path",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:  "rescan",
			Usage: "rescan the whole chain history for transactions of the key",
		},
	},
	Action: nodeImportAction,
}

func nodeImportAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := walletSvc.ImportToNode(
		context.Background(),
		application.ImportToNodeArgs{
			Name:       ctx.String("name"),
			Passphrase: ctx.String("passphrase"),
			Account:    uint32(ctx.Uint("account")),
			Index:      uint32(ctx.Uint("index")),
			Testnet:    config.IsTestnet(),
			Rescan:     ctx.Bool("rescan"),
		},
	); err != nil {
		return err
	}

	fmt.Println("Done")
	return nil
}
