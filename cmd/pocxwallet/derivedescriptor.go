package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
)

var derivedescriptor = cli.Command{
	Name:  "descriptor",
	Usage: "derive the output descriptor of one key of a stored wallet",
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
			Name:  "testnet",
			Usage: "encode the key for the test network",
		},
	},
	Action: deriveDescriptorAction,
}

func deriveDescriptorAction(ctx *cli.Context) error {
	walletSvc, cleanup, err := getWalletService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	descriptor, err := walletSvc.DeriveDescriptor(
		context.Background(),
		application.DeriveArgs{
			Name:       ctx.String("name"),
			Passphrase: ctx.String("passphrase"),
			Account:    uint32(ctx.Uint("account")),
			Index:      uint32(ctx.Uint("index")),
			Testnet:    ctx.Bool("testnet") || config.IsTestnet(),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println(descriptor)
	return nil
}
