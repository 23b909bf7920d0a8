package main

import (
	"testing"
)

func TestUserAddListRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	addUser(t, env, "alice", "correct horse battery")

	out, _, err := runCLI(t, env, []string{"user", "list"}, "")
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	requireContains(t, out, "alice")

	out, _, err = runCLI(t, env, []string{"user", "remove", "alice"}, "")
	if err != nil {
		t.Fatalf("user remove: %v", err)
	}
	requireContains(t, out, "Removed user alice")

	out, _, err = runCLI(t, env, []string{"user", "list"}, "")
	if err != nil {
		t.Fatalf("user list after remove: %v", err)
	}
	requireContains(t, out, "No users provisioned")
}

func TestUserAddDuplicate(t *testing.T) {
	env := setupCLITestEnv(t)

	addUser(t, env, "alice", "first password")

	_, _, err := runCLI(t, env, []string{"user", "add", "alice", "--password", "second password"}, "")
	if err == nil {
		t.Fatal("expected duplicate user error")
	}
	requireContains(t, err.Error(), "already exists")

	// The original credential must still work.
	login(t, env, "alice", "first password")
}

func TestUserAddPromptedPassword(t *testing.T) {
	env := setupCLITestEnv(t)

	// Both prompt reads come from the same piped stdin.
	out, _, err := runCLI(t, env, []string{"user", "add", "bob"}, "piped secret\npiped secret\n")
	if err != nil {
		t.Fatalf("user add with prompted password: %v", err)
	}
	requireContains(t, out, "Created user bob")

	login(t, env, "bob", "piped secret")
}

func TestUserAddPromptsMismatch(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, []string{"user", "add", "bob"}, "one\ntwo\n")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	requireContains(t, err.Error(), "do not match")
}

func TestUserRemoveUnknown(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, []string{"user", "remove", "ghost"}, "")
	if err == nil {
		t.Fatal("expected error removing unknown user")
	}
	requireContains(t, err.Error(), "not found")
}
