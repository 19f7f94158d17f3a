package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/crestrepo/photovault/internal/common"
	"github.com/crestrepo/photovault/internal/models"
)

// promptFolder reads a folder name and resolves it on the bound account.
// Folder names are the CLI-facing address; ids stay internal.
func (a *App) promptFolder(prompt string) (*models.Folder, error) {
	name, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	folder := a.account.FolderByName(name)
	if folder == nil {
		printlnFn("No folder named", name)
		return nil, common.ErrFolderNotFound
	}
	return folder, nil
}

// List prints the account's folders in creation order with their photos.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if len(a.account.Folders) == 0 {
		printlnFn("No folders yet, use 'mkdir' to create one")
		return nil
	}

	for _, folder := range a.account.Folders {
		printlnFn(fmt.Sprintf("%s (%d photos)", folder.Name, len(folder.Photos)))
		for i, photo := range folder.Photos {
			printlnFn(fmt.Sprintf("  %d: %s", i, photo.Name))
		}
	}
	return nil
}

func (a *App) CreateFolder(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return err
	}

	folder, err := a.core.Vault().CreateFolder(ctx, a.account, name)
	if err != nil && !a.isSaveWarning(err) {
		printlnFn("Error:", err.Error())
		return err
	}
	a.reportSaveWarning(err)

	printlnFn("Created folder", folder.Name)
	return nil
}

func (a *App) RenameFolder(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter folder to rename")
	if err != nil {
		return err
	}

	newName, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	err = a.core.Vault().RenameFolder(ctx, a.account, folder.ID, newName)
	if err != nil && !a.isSaveWarning(err) {
		printlnFn("Error:", err.Error())
		return err
	}
	a.reportSaveWarning(err)

	printlnFn("Renamed to", folder.Name)
	return nil
}

// DeleteFolder removes a folder and everything in it, after confirmation.
func (a *App) DeleteFolder(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter folder to delete")
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader,
		fmt.Sprintf("Delete %q and its %d photos? (y/n)", folder.Name, len(folder.Photos)), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	err = a.core.Vault().DeleteFolder(ctx, a.account, folder.ID)
	a.reportSaveWarning(err)

	if a.cursor != nil && a.cursor.FolderID == folder.ID {
		a.cursor = nil
	}
	printlnFn("Deleted folder", folder.Name)
	return nil
}
