package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var revealsecrets = cli.Command{
	Name:  "reveal",
	Usage: "decrypt and print the seed material of a stored wallet",
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
	},
	Action: revealSecretsAction,
}

func revealSecretsAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	secrets, err := walletSvc.RevealWalletSecrets(
		context.Background(), ctx.String("name"), ctx.String("passphrase"),
	)
	if err != nil {
		return err
	}

	printJSON(secrets)
	return nil
}
