package config

import "testing"

type testConfig struct {
	Port string `mapstructure:"port"`
	Data struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"data"`
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CARDTEST_PORT", "9999")
	t.Setenv("CARDTEST_DATA_PATH", "/tmp/cards.json")

	cfg := testConfig{Port: "8000"}
	cfg.Data.Path = "data/cards.json"
	if err := Load("CARDTEST_", &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.Data.Path != "/tmp/cards.json" {
		t.Errorf("Data.Path = %q, want /tmp/cards.json", cfg.Data.Path)
	}
}

func TestLoad_DefaultsSurviveWithoutEnv(t *testing.T) {
	cfg := testConfig{Port: "8000"}
	cfg.Data.Path = "data/cards.json"
	if err := Load("CARDTEST_", &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" || cfg.Data.Path != "data/cards.json" {
		t.Errorf("defaults clobbered: %+v", cfg)
	}
}
