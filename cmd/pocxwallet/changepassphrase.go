package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

const (
	curPassphraseFlagName = "current_passphrase"
	newPassphraseFlagName = "new_passphrase"
)

var changepassphrase = cli.Command{
	Name:  "changepassphrase",
	Usage: "re-encrypt a stored wallet with a new passphrase",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "the name of the wallet",
			Value: "",
		},
		&cli.StringFlag{
			Name:  curPassphraseFlagName,
			Usage: "the passphrase to be changed",
			Value: "",
		},
		&cli.StringFlag{
			Name:  newPassphraseFlagName,
			Usage: "the new passphrase that replaces the current one",
			Value: "",
		},
	},
	Action: changePassphraseAction,
}

func changePassphraseAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := walletSvc.ChangePassphrase(
		context.Background(),
		ctx.String("name"),
		ctx.String(curPassphraseFlagName),
		ctx.String(newPassphraseFlagName),
	); err != nil {
		return err
	}

	fmt.Println("Done")
	return nil
}
