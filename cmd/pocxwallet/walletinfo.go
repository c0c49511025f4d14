package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var walletinfo = cli.Command{
	Name:  "info",
	Usage: "show the public details of a stored wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "the name of the wallet",
			Value: "",
		},
	},
	Action: walletInfoAction,
}

func walletInfoAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := walletSvc.GetWalletInfo(context.Background(), ctx.String("name"))
	if err != nil {
		return err
	}

	printJSON(info)
	return nil
}
