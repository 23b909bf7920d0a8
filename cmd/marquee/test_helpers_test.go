package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
	"marquee/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(homeDir, ".config", "marquee", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal test config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func runCLI(t *testing.T, env *cliTestEnv, args []string, stdin string) (string, string, error) {
	t.Helper()

	full := append([]string{"--config", env.configPath}, args...)
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(full)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func addUser(t *testing.T, env *cliTestEnv, username, password string) {
	t.Helper()
	if _, _, err := runCLI(t, env, []string{"user", "add", username, "--password", password}, ""); err != nil {
		t.Fatalf("user add %s: %v", username, err)
	}
}

func login(t *testing.T, env *cliTestEnv, username, password string) {
	t.Helper()
	out, _, err := runCLI(t, env, []string{"login", username}, password+"\n")
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	requireContains(t, out, fmt.Sprintf("Logged in as %s", username))
}
