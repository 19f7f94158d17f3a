package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestrepo/photovault/internal/models"
)

func accountWithPhotos(names ...string) (*models.Account, *models.Folder) {
	acc := models.NewAccount("alice", "secret1")
	folder := &models.Folder{ID: "f1", Name: "Trip"}
	for i, name := range names {
		folder.AddPhoto(&models.Photo{ID: string(rune('a' + i)), Name: name})
	}
	acc.AddFolder(folder)
	return acc, folder
}

func TestCursor_WrapsBothWays(t *testing.T) {
	c := &Cursor{FolderID: "f1", Index: 0}

	c.Next(3)
	assert.Equal(t, 1, c.Index)
	c.Next(3)
	assert.Equal(t, 2, c.Index)
	c.Next(3)
	assert.Equal(t, 0, c.Index, "forward wraps to the first photo")

	c.Prev(3)
	assert.Equal(t, 2, c.Index, "backward wraps to the last photo")
}

func TestCursor_EmptyFolderIsNoOp(t *testing.T) {
	c := &Cursor{FolderID: "f1", Index: 0}
	c.Next(0)
	c.Prev(0)
	assert.Equal(t, 0, c.Index)
}

func TestCursor_Resolve(t *testing.T) {
	acc, folder := accountWithPhotos("a.png", "b.png")

	c := &Cursor{FolderID: folder.ID, Index: 1}
	gotFolder, gotPhoto := c.Resolve(acc)
	require.NotNil(t, gotPhoto)
	assert.Equal(t, "b.png", gotPhoto.Name)
	assert.Equal(t, folder.ID, gotFolder.ID)

	// photo deleted underneath the cursor
	c.Index = 5
	_, gotPhoto = c.Resolve(acc)
	assert.Nil(t, gotPhoto)

	// folder deleted underneath the cursor
	c.FolderID = "missing"
	gotFolder, gotPhoto = c.Resolve(acc)
	assert.Nil(t, gotFolder)
	assert.Nil(t, gotPhoto)
}
