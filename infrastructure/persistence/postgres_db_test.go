package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgreSQLDB(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "unreachable server", dsn: "postgres://u:p@127.0.0.1:1/audit?sslmode=disable&connect_timeout=1"},
		{name: "malformed dsn", dsn: "postgres://%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := NewPostgreSQLDB(context.Background(), tt.dsn)
			assert.Error(t, err)
			assert.Nil(t, db)
		})
	}
}
