package shared_test

import (
	"strings"
	"testing"

	"hotelbook/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	// blank out anything the surrounding environment may carry
	for _, k := range []string{"HTTP_ADDR", "MYSQL_DSN", "MIGRATIONS_DIR", "CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	cfg := shared.Load()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.MigrationsDir != "migrations" {
		t.Fatalf("MigrationsDir = %q", cfg.MigrationsDir)
	}
	// the seeder runs multi-statement migration files through one Exec,
	// so the driver must ask for CLIENT_MULTI_STATEMENTS up front
	for _, param := range []string{"parseTime=true", "multiStatements=true"} {
		if !strings.Contains(cfg.MySQLDSN, param) {
			t.Fatalf("default DSN missing %s: %q", param, cfg.MySQLDSN)
		}
	}
	if cfg.CacheTTL.Seconds() != 900 {
		t.Fatalf("CacheTTL = %v", cfg.CacheTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("MYSQL_DSN", "user:pw@tcp(db:3306)/other?parseTime=true&multiStatements=true")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg := shared.Load()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !strings.Contains(cfg.MySQLDSN, "db:3306") {
		t.Fatalf("MySQLDSN = %q", cfg.MySQLDSN)
	}
	if cfg.RateRPS != 5 {
		t.Fatalf("RateRPS = %d", cfg.RateRPS)
	}
}
