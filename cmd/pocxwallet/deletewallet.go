package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var deletewallet = cli.Command{
	Name:  "delete",
	Usage: "delete a stored wallet, its seed material included",
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
	Action: deleteWalletAction,
}

func deleteWalletAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := walletSvc.DeleteWallet(
		context.Background(), ctx.String("name"), ctx.String("passphrase"),
	); err != nil {
		return err
	}

	fmt.Println("Done")
	return nil
}
