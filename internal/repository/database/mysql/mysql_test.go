package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMySQLDSN(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		database    string
		parameters  []string
		expected    string
		expectedErr string
	}{
		{
			name:       "Should build dsn with parameters",
			username:   "qr",
			password:   "secret",
			database:   "tcp(localhost:3306)/ukrpay",
			parameters: []string{"charset=utf8mb4", "parseTime=True"},
			expected:   "qr:secret@tcp(localhost:3306)/ukrpay?charset=utf8mb4&parseTime=True",
		},
		{
			name:     "Should build dsn without parameters",
			username: "qr",
			password: "secret",
			database: "tcp(localhost:3306)/ukrpay",
			expected: "qr:secret@tcp(localhost:3306)/ukrpay",
		},
		{
			name:        "Should fail on missing password",
			username:    "qr",
			database:    "tcp(localhost:3306)/ukrpay",
			expectedErr: "password must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := buildMySQLDSN(tt.username, tt.password, tt.database, tt.parameters)
			if tt.expectedErr != "" {
				require.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, dsn)
		})
	}
}
