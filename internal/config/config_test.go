package config

import (
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDecode(t *testing.T) {
	raw := `
[account]
name = "Flow Deck"
handle = "flowdeck"

[defaults]
platform = "linkedin"
view = "month"

[storage]
dir = "/tmp/flowdeck-test"
`
	var cfg Config
	if _, err := toml.Decode(raw, &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Account.Name != "Flow Deck" || cfg.Account.Handle != "flowdeck" {
		t.Errorf("account = %+v", cfg.Account)
	}
	if cfg.DefaultPlatform() != "linkedin" || cfg.DefaultView() != "month" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	dir, err := cfg.DataDir()
	if err != nil || dir != "/tmp/flowdeck-test" {
		t.Errorf("data dir = %q, %v", dir, err)
	}
	posts, _ := cfg.PostsPath()
	if posts != filepath.Join("/tmp/flowdeck-test", "posts.json") {
		t.Errorf("posts path = %q", posts)
	}
}

func TestDefaultsWhenEmpty(t *testing.T) {
	cfg := &Config{}
	if cfg.DefaultPlatform() != "twitter" {
		t.Errorf("default platform = %q", cfg.DefaultPlatform())
	}
	if cfg.DefaultView() != "week" {
		t.Errorf("default view = %q", cfg.DefaultView())
	}
}
