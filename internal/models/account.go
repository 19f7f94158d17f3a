// Package models defines the photovault data model: an Account owning a tree
// of named folders, each holding an ordered list of photos. An account is
// persisted as a single JSON document keyed by its normalized identifier.
package models

import "strings"

// Account is a registered identity with its folder/photo tree.
//
// Password is stored and compared as an opaque clear-text string. That is the
// behavioral contract of this system; hardening it would change the persisted
// document shape.
type Account struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Folders  []*Folder `json:"folders"`
}

// NewAccount returns an account with an empty folder tree. The identifier
// must already be normalized.
func NewAccount(username, password string) *Account {
	return &Account{Username: username, Password: password, Folders: []*Folder{}}
}

// NormalizeIdentifier lowercases and trims an account identifier. All lookups
// and uniqueness checks operate on the normalized form.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Folder returns the folder with the given id, or nil.
func (a *Account) Folder(id string) *Folder {
	for _, f := range a.Folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FolderByName returns the folder with the given display name under
// case-insensitive comparison, or nil.
func (a *Account) FolderByName(name string) *Folder {
	for _, f := range a.Folders {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// AddFolder appends a folder, preserving creation order for stable rendering.
func (a *Account) AddFolder(f *Folder) {
	a.Folders = append(a.Folders, f)
}

// RemoveFolder deletes the folder with the given id together with all its
// photos. Returns false if no such folder exists.
func (a *Account) RemoveFolder(id string) bool {
	for i, f := range a.Folders {
		if f.ID == id {
			a.Folders = append(a.Folders[:i], a.Folders[i+1:]...)
			return true
		}
	}
	return false
}
