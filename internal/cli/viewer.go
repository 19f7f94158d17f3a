package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/crestrepo/photovault/internal/imagex"
	"github.com/crestrepo/photovault/internal/models"
)

// Cursor is the open viewer position: a folder and an index into its photo
// sequence. Navigation wraps around in both directions.
type Cursor struct {
	FolderID string
	Index    int
}

// Resolve looks the cursor up on the account. A nil photo means the cursor no
// longer points at anything (the folder or photo was deleted underneath it)
// and the viewer should close.
func (c *Cursor) Resolve(acc *models.Account) (*models.Folder, *models.Photo) {
	folder := acc.Folder(c.FolderID)
	if folder == nil {
		return nil, nil
	}
	return folder, folder.Photo(c.Index)
}

// Next advances the cursor, wrapping past the last photo to the first.
func (c *Cursor) Next(count int) {
	if count > 0 {
		c.Index = (c.Index + 1) % count
	}
}

// Prev moves the cursor back, wrapping past the first photo to the last.
func (c *Cursor) Prev(count int) {
	if count > 0 {
		c.Index = (c.Index - 1 + count) % count
	}
}

// View opens the viewer on a chosen photo. While open, the prompt shows the
// position and 'next'/'prev' navigate.
func (a *App) View(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	folder, err := a.promptFolder("Enter folder")
	if err != nil {
		return err
	}
	if len(folder.Photos) == 0 {
		printlnFn("Folder is empty")
		return nil
	}

	line, err := getSimpleText(a.reader, "Enter photo number", os.Stdout)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(line)
	if err != nil || folder.Photo(index) == nil {
		printlnFn("No photo at position", line)
		return nil
	}

	a.cursor = &Cursor{FolderID: folder.ID, Index: index}
	a.showCurrent()
	return nil
}

func (a *App) NextPhoto(ctx context.Context) error {
	return a.moveViewer(func(c *Cursor, count int) { c.Next(count) })
}

func (a *App) PrevPhoto(ctx context.Context) error {
	return a.moveViewer(func(c *Cursor, count int) { c.Prev(count) })
}

func (a *App) CloseViewer(ctx context.Context) error {
	if a.cursor == nil {
		printlnFn("Viewer is not open")
		return nil
	}
	a.cursor = nil
	printlnFn("Viewer closed")
	return nil
}

func (a *App) moveViewer(move func(c *Cursor, count int)) error {
	if !a.requireLogin() {
		return nil
	}
	if a.cursor == nil {
		printlnFn("Viewer is not open, use 'view' first")
		return nil
	}

	folder, photo := a.cursor.Resolve(a.account)
	if photo == nil {
		a.cursor = nil
		printlnFn("Photo is gone, viewer closed")
		return nil
	}

	move(a.cursor, len(folder.Photos))
	a.showCurrent()
	return nil
}

// showCurrent prints the photo under the cursor. The cursor is known to be
// valid when this is called.
func (a *App) showCurrent() {
	folder, photo := a.cursor.Resolve(a.account)
	if photo == nil {
		a.cursor = nil
		return
	}

	mediaType, data, err := imagex.DecodeDataURL(photo.DataURL)
	if err != nil {
		printlnFn(fmt.Sprintf("%s [%d/%d]: unreadable photo data", photo.Name, a.cursor.Index+1, len(folder.Photos)))
		return
	}
	printlnFn(fmt.Sprintf("%s [%d/%d] %s, %d bytes", photo.Name, a.cursor.Index+1, len(folder.Photos), mediaType, len(data)))
}
