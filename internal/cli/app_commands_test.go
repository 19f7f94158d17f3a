package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestrepo/photovault/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DatabaseDSN: filepath.Join(dir, "vault.db"),
		SessionDir:  filepath.Join(dir, "state"),
	}
	app, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	app.account = app.core.InitAuth(context.Background())
	return app
}

// muteOutput captures everything the handlers print.
func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var captured []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		captured = append(captured, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &captured
}

// stubText queues answers for the single-line input prompts.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	old := getSimpleText
	i := 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	t.Cleanup(func() { getSimpleText = old })
}

func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	old := getPassword
	i := 0
	getPassword = func(string, io.Writer) ([]byte, error) {
		if i >= len(answers) {
			return nil, io.EOF
		}
		v := []byte(answers[i])
		i++
		return v, nil
	}
	t.Cleanup(func() { getPassword = old })
}

func stubLines(t *testing.T, lines []string) {
	t.Helper()
	old := getLines
	getLines = func(*bufio.Reader, string, io.Writer) ([]string, error) {
		return lines, nil
	}
	t.Cleanup(func() { getLines = old })
}

func writeTestPNG(t *testing.T, dir, name string, tail ...byte) string {
	t.Helper()
	sig := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, append(sig, tail...), 0600))
	return path
}

func registerAlice(t *testing.T, app *App) {
	t.Helper()
	stubText(t, "alice")
	stubPassword(t, "secret1", "secret1")
	require.NoError(t, app.Register(context.Background()))
	require.NotNil(t, app.account)
}

func TestApp_RegisterAndLogout(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)

	registerAlice(t, app)
	assert.Equal(t, "alice", app.account.Username)
	assert.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestApp_RegisterPasswordMismatch(t *testing.T) {
	app := newTestApp(t)
	out := muteOutput(t)

	stubText(t, "alice")
	stubPassword(t, "secret1", "different")
	require.NoError(t, app.Register(context.Background()))

	assert.Nil(t, app.account)
	assert.Contains(t, strings.Join(*out, ""), "do not match")
}

func TestApp_RequiresLogin(t *testing.T) {
	app := newTestApp(t)
	out := muteOutput(t)

	require.NoError(t, app.List(context.Background()))
	assert.Contains(t, strings.Join(*out, ""), "Not logged in")
}

func TestApp_FolderLifecycle(t *testing.T) {
	app := newTestApp(t)
	out := muteOutput(t)
	ctx := context.Background()

	registerAlice(t, app)

	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))
	require.Len(t, app.account.Folders, 1)

	stubText(t, "Trip", "Vacation")
	require.NoError(t, app.RenameFolder(ctx))
	assert.Equal(t, "Vacation", app.account.Folders[0].Name)

	require.NoError(t, app.List(ctx))
	assert.Contains(t, strings.Join(*out, ""), "Vacation (0 photos)")

	stubText(t, "Vacation", "y")
	require.NoError(t, app.DeleteFolder(ctx))
	assert.Empty(t, app.account.Folders)
}

func TestApp_DeleteFolderCancelled(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()

	registerAlice(t, app)
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))

	stubText(t, "Trip", "n")
	require.NoError(t, app.DeleteFolder(ctx))
	assert.Len(t, app.account.Folders, 1)
}

func TestApp_UploadAndDownload(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()
	dir := t.TempDir()

	registerAlice(t, app)
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))

	png := writeTestPNG(t, dir, "sunset.png", 1, 2, 3)
	stubText(t, "Trip")
	stubLines(t, []string{png, filepath.Join(dir, "missing.png")})
	require.NoError(t, app.Upload(ctx))

	folder := app.account.FolderByName("Trip")
	require.Len(t, folder.Photos, 1, "the unreadable path is skipped")
	assert.Equal(t, "sunset.png", folder.Photos[0].Name)

	outPath := filepath.Join(dir, "copy.png")
	stubText(t, "Trip", "0", outPath)
	require.NoError(t, app.Download(ctx))

	original, err := os.ReadFile(png)
	require.NoError(t, err)
	saved, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, original, saved)
}

func TestApp_DeletePhotos(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()
	dir := t.TempDir()

	registerAlice(t, app)
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))

	stubText(t, "Trip")
	stubLines(t, []string{
		writeTestPNG(t, dir, "a.png", 1),
		writeTestPNG(t, dir, "b.png", 2),
		writeTestPNG(t, dir, "c.png", 3),
	})
	require.NoError(t, app.Upload(ctx))

	stubText(t, "Trip", "0 2")
	require.NoError(t, app.DeletePhotos(ctx))

	folder := app.account.FolderByName("Trip")
	require.Len(t, folder.Photos, 1)
	assert.Equal(t, "b.png", folder.Photos[0].Name)
}

func TestApp_ViewerNavigation(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()
	dir := t.TempDir()

	registerAlice(t, app)
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))

	stubText(t, "Trip")
	stubLines(t, []string{
		writeTestPNG(t, dir, "a.png", 1),
		writeTestPNG(t, dir, "b.png", 2),
	})
	require.NoError(t, app.Upload(ctx))

	stubText(t, "Trip", "0")
	require.NoError(t, app.View(ctx))
	require.NotNil(t, app.cursor)
	assert.Equal(t, 0, app.cursor.Index)

	require.NoError(t, app.NextPhoto(ctx))
	assert.Equal(t, 1, app.cursor.Index)

	require.NoError(t, app.NextPhoto(ctx), "wraps past the end")
	assert.Equal(t, 0, app.cursor.Index)

	require.NoError(t, app.PrevPhoto(ctx), "wraps past the start")
	assert.Equal(t, 1, app.cursor.Index)

	require.NoError(t, app.CloseViewer(ctx))
	assert.Nil(t, app.cursor)
}

func TestApp_ViewerClosesWhenFolderDeleted(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()
	dir := t.TempDir()

	registerAlice(t, app)
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))

	stubText(t, "Trip")
	stubLines(t, []string{writeTestPNG(t, dir, "a.png", 1)})
	require.NoError(t, app.Upload(ctx))

	stubText(t, "Trip", "0")
	require.NoError(t, app.View(ctx))
	require.NotNil(t, app.cursor)

	stubText(t, "Trip", "y")
	require.NoError(t, app.DeleteFolder(ctx))
	assert.Nil(t, app.cursor, "deleting the viewed folder closes the viewer")
}

func TestApp_StatusLine(t *testing.T) {
	app := newTestApp(t)
	muteOutput(t)
	ctx := context.Background()

	assert.Equal(t, "", app.getStatus())

	registerAlice(t, app)
	assert.Equal(t, "(alice)", app.getStatus())

	dir := t.TempDir()
	stubText(t, "Trip")
	require.NoError(t, app.CreateFolder(ctx))
	stubText(t, "Trip")
	stubLines(t, []string{writeTestPNG(t, dir, "a.png", 1), writeTestPNG(t, dir, "b.png", 2)})
	require.NoError(t, app.Upload(ctx))

	stubText(t, "Trip", "1")
	require.NoError(t, app.View(ctx))
	assert.Equal(t, "(alice Trip 2/2)", app.getStatus())
}

func TestApp_LoginAfterRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DatabaseDSN: filepath.Join(dir, "vault.db"),
		SessionDir:  filepath.Join(dir, "state"),
	}
	muteOutput(t)
	ctx := context.Background()

	first, err := NewApp(cfg)
	require.NoError(t, err)
	first.account = first.core.InitAuth(ctx)
	registerAlice(t, first)
	require.NoError(t, first.Close())

	second, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	second.account = second.core.InitAuth(ctx)
	require.NotNil(t, second.account, "session binding survives the restart")
	assert.Equal(t, "alice", second.account.Username)
}
