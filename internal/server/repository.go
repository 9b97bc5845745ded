package server

import (
	"fmt"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/bolt"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/inmemory"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/mysql"
)

// CreateRepository opens and migrates the form store selected by database.use.
func CreateRepository(conf config.DatabaseConfig, logger logging.Logger) (database.Repository, error) {
	var repo database.Repository
	var err error

	switch conf.Use {
	case config.Mysql:
		repo, err = mysql.NewMySQLConnector(conf, logger)
	case config.Bolt:
		repo, err = bolt.NewBoltProvider(conf.BoltFile, logger)
	case config.Inmemory, "":
		repo = inmemory.NewInMemoryProvider()
	default:
		return nil, fmt.Errorf("unsupported database type %q", conf.Use)
	}
	if err != nil {
		return nil, err
	}

	if err := repo.Migrate(); err != nil {
		_ = repo.Close()
		return nil, err
	}

	return repo, nil
}
