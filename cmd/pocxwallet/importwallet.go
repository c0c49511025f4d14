package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var importwallet = cli.Command{
	Name:  "import",
	Usage: "import a wallet from a single private key",
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
			Name:  "key",
			Usage: "the private key, either WIF or 32 bytes of hex",
			Value: "",
		},
	},
	Action: importWalletAction,
}

func importWalletAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := walletSvc.ImportWallet(
		context.Background(),
		application.ImportWalletArgs{
			Name:       ctx.String("name"),
			Key:        ctx.String("key"),
			Passphrase: ctx.String("passphrase"),
		},
	)
	if err != nil {
		return err
	}

	printJSON(info)
	return nil
}
