package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pocx-network/pocxwallet/config"
	"github.com/pocx-network/pocxwallet/internal/core/application"
	"github.com/pocx-network/pocxwallet/pkg/stats"
	"github.com/pocx-network/pocxwallet/pkg/vanity"
)

var vanitysearch = cli.Command{
	Name:  "vanity",
	Usage: "search a wallet whose first address contains a pattern",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "the string the address must contain, bech32 alphabet only",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "testnet",
			Usage: "match against testnet addresses",
		},
		&cli.BoolFlag{
			Name:  "accelerated",
			Usage: "use hardware acceleration if available",
		},
		&cli.BoolFlag{
			Name:  "estimate",
			Usage: "print the expected number of attempts and exit",
		},
		&cli.StringFlag{
			Name:  "save_as",
			Usage: "store the found wallet under this name",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "the passphrase encrypting the stored wallet at rest",
			Value: "",
		},
	},
	Action: vanitySearchAction,
}

type vanitySearchOutput struct {
	Address     string                  `json:"address"`
	Mnemonic    string                  `json:"mnemonic"`
	WIF         string                  `json:"wif"`
	Attempts    uint64                  `json:"attempts"`
	Elapsed     string                  `json:"elapsed"`
	SavedWallet *application.WalletInfo `json:"saved_wallet,omitempty"`
}

func vanitySearchAction(ctx *cli.Context) error {
	pattern := ctx.String("pattern")

	if ctx.Bool("estimate") {
		printJSON(map[string]string{
			"pattern":           pattern,
			"expected_attempts": vanity.EstimateAttempts(pattern).StringFixed(0),
		})
		return nil
	}

	vanitySvc, cleanup, err := getVanityService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	searchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info("stopping the search")
		cancel()
	}()

	if config.GetBool(config.EnableProfilerKey) {
		stats.EnableRuntimeStatistics(
			searchCtx,
			time.Duration(config.GetInt(config.StatsIntervalKey))*time.Second,
			filepath.Join(
				config.GetDatadir(), config.ProfilerLocation, "prometheus",
			),
		)
	}

	log.Infof(
		"searching for '%s', %s attempts expected, interrupt to give up",
		pattern, vanity.EstimateAttempts(pattern).StringFixed(0),
	)

	result, err := vanitySvc.Search(searchCtx, application.VanitySearchArgs{
		Pattern:     pattern,
		Testnet:     ctx.Bool("testnet") || config.IsTestnet(),
		Accelerated: ctx.Bool("accelerated"),
		SaveAs:      ctx.String("save_as"),
		Passphrase:  ctx.String("passphrase"),
		OnProgress: func(p vanity.Progress) {
			log.Infof(
				"attempts: %d, rate: %.0f addr/s, elapsed: %s",
				p.Attempts, p.Rate, p.Elapsed.Round(time.Second),
			)
		},
	})
	if err != nil {
		if err == context.Canceled {
			return fmt.Errorf("search interrupted before finding a match")
		}
		return err
	}

	printJSON(vanitySearchOutput{
		Address:     result.Address,
		Mnemonic:    result.Mnemonic,
		WIF:         result.WIF,
		Attempts:    result.Attempts,
		Elapsed:     result.Elapsed.Round(time.Millisecond).String(),
		SavedWallet: result.SavedWallet,
	})
	return nil
}
