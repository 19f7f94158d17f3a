package cli

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/crestrepo/photovault/internal/common"
)

// getSimpleText, getPassword and getLines are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getLines = GetLines

// Register prompts for a username and a password (entered twice) and creates
// the account. Registration logs the new account in immediately.
//
// A storage write failure does not abort: the account stands for the rest of
// the run and a warning is printed instead.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	repeat, err := getPassword("Repeat password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	if !bytes.Equal(password, repeat) {
		printlnFn("Passwords do not match")
		return nil
	}

	acc, err := a.core.Register(ctx, username, string(password))
	if err != nil && !errors.Is(err, common.ErrBackend) {
		printlnFn("Error:", err.Error())
		return err
	}
	a.reportSaveWarning(err)

	a.account = acc
	a.cursor = nil
	printlnFn("Success! Logged in as", acc.Username)
	return nil
}

// Login prompts for credentials and binds the session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.core.Login(ctx, username, string(password))
	if err != nil && !errors.Is(err, common.ErrBackend) {
		printlnFn("Error:", err.Error())
		return err
	}
	a.reportSaveWarning(err)

	a.account = acc
	a.cursor = nil
	printlnFn("Logged in as", acc.Username)
	return nil
}

// Logout clears the persisted session binding and drops the bound account.
func (a *App) Logout(ctx context.Context) error {
	err := a.core.Logout(ctx)
	a.reportSaveWarning(err)

	a.account = nil
	a.cursor = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) requireLogin() bool {
	if a.account == nil {
		printlnFn("Not logged in")
		return false
	}
	return true
}

// isSaveWarning reports whether err is a storage write failure the handler
// should downgrade to a warning instead of aborting.
func (a *App) isSaveWarning(err error) bool {
	return errors.Is(err, common.ErrBackend)
}

// reportSaveWarning prints a warning for storage write failures. The
// in-memory state is already updated when these occur, so the session
// continues, it just may not survive a restart.
func (a *App) reportSaveWarning(err error) {
	if err != nil && errors.Is(err, common.ErrBackend) {
		printlnFn("Warning: local storage is unavailable, this change may not survive a restart")
	}
}
