package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var deriveaddress = cli.Command{
	Name:  "address",
	Usage: "derive an address of a stored wallet",
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
			Name:  "change",
			Usage: "derive from the internal chain instead of the external one",
		},
		&cli.BoolFlag{
			Name:  "testnet",
			Usage: "derive a testnet address",
		},
	},
	Action: deriveAddressAction,
}

func deriveAddressAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	address, err := walletSvc.DeriveAddress(
		context.Background(),
		application.DeriveArgs{
			Name:       ctx.String("name"),
			Passphrase: ctx.String("passphrase"),
			Account:    uint32(ctx.Uint("account")),
			Index:      uint32(ctx.Uint("index")),
			Testnet:    ctx.Bool("testnet") || config.IsTestnet(),
			Change:     ctx.Bool("change"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println(address)
	return nil
}
