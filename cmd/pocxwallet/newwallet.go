package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var newwallet = cli.Command{
	Name:  "new",
	Usage: "create a new wallet from freshly generated entropy",
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
		&cli.IntFlag{
			Name:  "words",
			Usage: "mnemonic length, one of 12, 15, 18, 21 or 24",
			Value: 12,
		},
		&cli.StringFlag{
			Name:  "seed_passphrase",
			Usage: "optional BIP39 passphrase hardening the seed",
			Value: "",
		},
	},
	Action: newWalletAction,
}

func newWalletAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := walletSvc.CreateWallet(
		context.Background(),
		application.CreateWalletArgs{
			Name:           ctx.String("name"),
			WordCount:      ctx.Int("words"),
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
