package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/pocx-network/pocxwallet/internal/core/domain"
	"github.com/pocx-network/pocxwallet/internal/core/ports"
)

// DbManager holds the badgerhold store and the repositories backed by it.
type DbManager struct {
	Store *badgerhold.Store

	walletRepository domain.WalletRepository
}

// NewDbManager opens (or creates if not exists) the badger store on
// disk. It expects a base data dir and an optional logger.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	walletDb, err := createDb(filepath.Join(baseDbDir, "wallets"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallets db: %w", err)
	}

	manager := &DbManager{Store: walletDb}
	manager.walletRepository = NewWalletRepositoryImpl(manager)
	return manager, nil
}

// WalletRepository implements the ports.DbManager interface
func (d *DbManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

// Close implements the ports.DbManager interface
func (d *DbManager) Close() {
	if err := d.Store.Close(); err != nil {
		log.WithError(err).Warn("could not close wallets db")
	}
}

// NewTransaction implements the ports.DbManager interface
func (d *DbManager) NewTransaction() ports.Transaction {
	return d.Store.Badger().NewTransaction(true)
}

// RunTransaction runs the handler within a single badger transaction
// that gets committed if the handler succeeds and discarded otherwise.
// Repositories pick the transaction up from the context they receive.
func (d *DbManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.Store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, "tx", tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
