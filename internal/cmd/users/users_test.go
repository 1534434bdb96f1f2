package users

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:3004" || cfg.DBPath != "data/users.db" || cfg.CreateResponse != "record" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("STAFFBOOK_USERS_HTTP_ADDR", "env:1")
	t.Setenv("STAFFBOOK_USERS_CREATE_RESPONSE", "list")

	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "seed.yaml"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "env:1" || cfg.CreateResponse != "list" || cfg.SeedPath != "seed.yaml" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestParseConfigRejectsUnknownCreateResponse(t *testing.T) {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-create-response", "both"}); err == nil {
		t.Fatal("expected create response error")
	}
}
