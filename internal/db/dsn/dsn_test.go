package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kj-requests/kj-requests/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DB
		want string
	}{
		{
			name: "mysql",
			cfg: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "kj",
				Password:   "secret",
				Host:       "db",
				Port:       3306,
				Name:       "requests",
				Extras:     "parseTime=True",
			},
			want: "kj:secret@tcp(db:3306)/requests?parseTime=True",
		},
		{
			name: "postgres with extras",
			cfg: config.DB{
				GormEngine: config.EnginePostgres,
				User:       "kj",
				Password:   "secret",
				Host:       "db",
				Port:       5432,
				Name:       "requests",
				Extras:     "sslmode=disable",
			},
			want: "host=db port=5432 user=kj password=secret dbname=requests sslmode=disable",
		},
		{
			name: "postgres without extras",
			cfg: config.DB{
				GormEngine: config.EnginePostgres,
				User:       "kj",
				Password:   "secret",
				Host:       "db",
				Port:       5432,
				Name:       "requests",
			},
			want: "host=db port=5432 user=kj password=secret dbname=requests",
		},
		{
			name: "sqlite file",
			cfg:  config.DB{GormEngine: config.EngineSQLite, Path: "./kj.db"},
			want: "./kj.db",
		},
		{
			name: "sqlite with pragmas",
			cfg:  config.DB{GormEngine: config.EngineSQLite, Path: "./kj.db", Extras: "_pragma=busy_timeout(5000)"},
			want: "./kj.db?_pragma=busy_timeout(5000)",
		},
		{
			name: "sqlite in memory",
			cfg:  config.DB{GormEngine: config.EngineSQLite},
			want: ":memory:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&tt.cfg))
		})
	}
}
