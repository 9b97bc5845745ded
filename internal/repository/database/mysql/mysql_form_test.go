//go:build database
// +build database

package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/dbtest"
)

// build only when docker container is running
func TestMySQLFormCRUD(t *testing.T) {
	dbConf := config.DatabaseConfig{
		Use:      config.Mysql,
		Username: "root",
		Password: "example",
		Database: "tcp(localhost:3306)/test",
		Parameters: []string{
			"charset=utf8mb4",
			"collation=utf8mb4_general_ci",
			"parseTime=True",
			"timeout=30s",
		},
	}

	repo, err := NewMySQLConnector(dbConf, logging.NewNoopLogger())
	require.NoError(t, err)
	require.NoError(t, repo.Migrate())
	defer repo.Close()

	dbtest.RunFormCRUDTests(t, repo)
}
