package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
	dbbadger "github.com/pocx-network/pocxwallet/internal/infrastructure/storage/db/badger"
	"github.com/pocx-network/pocxwallet/pkg/vanity"
)

const (
	datadirFlagName  = "datadir"
	networkFlagName  = "network"
	logLevelFlagName = "log_level"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "pocxwallet CLI"
	app.Usage = "Command line interface for managing PoCX wallets"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  datadirFlagName,
			Usage: "directory where the wallet database is stored",
		},
		&cli.StringFlag{
			Name:  networkFlagName,
			Usage: "the network to operate on, either 'mainnet' or 'testnet'",
		},
		&cli.IntFlag{
			Name:  logLevelFlagName,
			Usage: "logging verbosity, from 0 (panic) to 6 (trace)",
		},
	}
	app.Before = setup
	app.Commands = append(
		app.Commands,
		&newwallet,
		&restorewallet,
		&importwallet,
		&listwallets,
		&walletinfo,
		&revealsecrets,
		&deriveaddress,
		&derivedescriptor,
		&changepassphrase,
		&deletewallet,
		&vanitysearch,
		&nodeimport,
		&nodestatus,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func setup(ctx *cli.Context) error {
	if ctx.IsSet(datadirFlagName) {
		config.Set(config.DatadirKey, ctx.String(datadirFlagName))
	}
	if ctx.IsSet(networkFlagName) {
		config.Set(config.NetworkKey, ctx.String(networkFlagName))
	}
	if ctx.IsSet(logLevelFlagName) {
		config.Set(config.LogLevelKey, ctx.Int(logLevelFlagName))
	}
	if err := config.Validate(); err != nil {
		return err
	}

	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	return nil
}

func getDbManager() (*dbbadger.DbManager, error) {
	return dbbadger.NewDbManager(
		filepath.Join(config.GetDatadir(), config.DbLocation), nil,
	)
}

func getWalletService(_ *cli.Context) (
	application.WalletService, func(), error,
) {
	dbManager, err := getDbManager()
	if err != nil {
		return nil, nil, err
	}

	nodeSvc, err := config.GetNodeService()
	if err != nil {
		dbManager.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if nodeSvc != nil {
			nodeSvc.Close()
		}
		dbManager.Close()
	}
	return application.NewWalletService(dbManager, nodeSvc), cleanup, nil
}

func getVanityService(_ *cli.Context) (
	application.VanityService, func(), error,
) {
	dbManager, err := getDbManager()
	if err != nil {
		return nil, nil, err
	}

	engine, err := vanity.NewService(vanity.ServiceOpts{
		NumWorkers: config.GetInt(config.VanityNumWorkersKey),
		ProgressInterval: time.Duration(
			config.GetInt(config.VanityProgressIntervalKey),
		) * time.Second,
	})
	if err != nil {
		dbManager.Close()
		return nil, nil, err
	}

	cleanup := func() { dbManager.Close() }
	return application.NewVanityService(engine, dbManager), cleanup, nil
}

func printJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonBytes))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[pocxwallet] %v\n", err)
	}
	os.Exit(1)
}
