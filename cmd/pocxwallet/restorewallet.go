package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var restorewallet = cli.Command{
	Name:  "restore",
	Usage: "restore a wallet from an existing mnemonic",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "the name the wallet is stored under",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "the passphrase encrypting the wallet at rest",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "mnemonic",
			Usage: "the space separated mnemonic words",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "seed_passphrase",
			Usage: "the BIP39 passphrase the seed was hardened with, if any",
			Value: "",
		},
	},
	Action: restoreWalletAction,
}

func restoreWalletAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := walletSvc.RestoreWallet(
		context.Background(),
		application.RestoreWalletArgs{
			Name:           ctx.String("name"),
			Mnemonic:       ctx.String("mnemonic"),
			SeedPassphrase: ctx.String("seed_passphrase"),
			Passphrase:     ctx.String("passphrase"),
		},
	)
	if err != nil {
		return err
	}

	printJSON(info)
	return nil
}
