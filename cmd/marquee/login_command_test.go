package main

import (
	"os"
	"testing"

	"marquee/internal/auth"
	"marquee/internal/config"
)

func TestLoginLogoutCycle(t *testing.T) {
	env := setupCLITestEnv(t)
	addUser(t, env, "alice", "hunter2 hunter2")

	login(t, env, "alice", "hunter2 hunter2")

	if _, err := os.Stat(env.cfg.SessionFilePath()); err != nil {
		t.Fatalf("expected session file after login: %v", err)
	}

	out, _, err := runCLI(t, env, []string{"whoami"}, "")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	requireContains(t, out, "alice")

	out, _, err = runCLI(t, env, []string{"logout"}, "")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	requireContains(t, out, "Logged out")

	if _, err := os.Stat(env.cfg.SessionFilePath()); !os.IsNotExist(err) {
		t.Fatalf("expected session file removed, got %v", err)
	}

	_, _, err = runCLI(t, env, []string{"whoami"}, "")
	if err == nil {
		t.Fatal("expected whoami to fail after logout")
	}
	requireContains(t, err.Error(), "not logged in")
}

func TestLoginRejectionsAreUniform(t *testing.T) {
	env := setupCLITestEnv(t)
	addUser(t, env, "alice", "right password")

	_, _, wrongPassword := runCLI(t, env, []string{"login", "alice"}, "wrong password\n")
	if wrongPassword == nil {
		t.Fatal("expected wrong password to fail")
	}
	_, _, unknownUser := runCLI(t, env, []string{"login", "mallory"}, "whatever\n")
	if unknownUser == nil {
		t.Fatal("expected unknown user to fail")
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("rejection messages differ: %q vs %q", wrongPassword.Error(), unknownUser.Error())
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, []string{"logout"}, "")
	if err != nil {
		t.Fatalf("logout without session: %v", err)
	}
	requireContains(t, out, "No active session")
}

func TestSeededDefaultUserCanLogin(t *testing.T) {
	env := setupCLITestEnv(t, func(cfg *config.Config) {
		cfg.Auth.SeedDefaultUser = true
	})

	login(t, env, auth.DefaultUsername, auth.DefaultPassword)
}
