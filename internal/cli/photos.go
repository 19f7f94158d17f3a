package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crestrepo/photovault/internal/imagex"
)

// Upload reads image files from disk and adds them to a folder. Unreadable
// paths are reported individually; the rest of the batch still goes in.
func (a *App) Upload(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter target folder")
	if err != nil {
		return err
	}

	paths, err := getLines(a.reader, "Enter file paths to upload", os.Stdout)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		printlnFn("Nothing to upload")
		return nil
	}

	files := make([]imagex.File, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			printlnFn("Skipping", path+":", err.Error())
			continue
		}
		files = append(files, imagex.File{Name: filepath.Base(path), Data: data})
	}

	added, err := a.core.Vault().AddPhotos(ctx, a.account, folder.ID, files)
	if err != nil && !a.isSaveWarning(err) {
		printlnFn("Error:", err.Error())
	}
	a.reportSaveWarning(err)

	printlnFn(fmt.Sprintf("Added %d of %d files to %s", len(added), len(paths), folder.Name))
	return nil
}

// DeletePhotos removes photos by their listed positions, as shown by 'ls'.
// All positions refer to the listing at the moment of the command.
func (a *App) DeletePhotos(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter folder")
	if err != nil {
		return err
	}

	line, err := getSimpleText(a.reader, "Enter photo numbers to delete (space separated)", os.Stdout)
	if err != nil {
		return err
	}

	var indices []int
	for _, field := range strings.Fields(line) {
		idx, err := strconv.Atoi(field)
		if err != nil {
			printlnFn("Not a number:", field)
			return nil
		}
		indices = append(indices, idx)
	}
	if len(indices) == 0 {
		printlnFn("Nothing to delete")
		return nil
	}

	before := len(folder.Photos)
	err = a.core.Vault().DeletePhotosByIndex(ctx, a.account, folder.ID, indices)
	a.reportSaveWarning(err)

	printlnFn(fmt.Sprintf("Deleted %d photos from %s", before-len(folder.Photos), folder.Name))
	return nil
}

// Download writes a photo back out as a file. The photo's original name is
// used when the output path is left empty.
func (a *App) Download(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter folder")
	if err != nil {
		return err
	}

	line, err := getSimpleText(a.reader, "Enter photo number", os.Stdout)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(line)
	if err != nil {
		printlnFn("Not a number:", line)
		return nil
	}

	photo := a.core.Vault().GetPhoto(a.account, folder.ID, index)
	if photo == nil {
		printlnFn("No photo at position", line)
		return nil
	}

	path, err := getSimpleText(a.reader, fmt.Sprintf("Enter output path (default %s)", photo.Name), os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		path = photo.Name
	}

	_, data, err := imagex.DecodeDataURL(photo.DataURL)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Saved", photo.Name, "to", path)
	return nil
}
