package models

// Folder is a named container of photos. The id is assigned at creation and
// never changes; renaming only touches Name. Photos keep upload order.
type Folder struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Photos []*Photo `json:"photos"`
}

// Photo returns the photo at the given position, or nil when the index is out
// of range. Callers may hold stale indices after a concurrent deletion, so an
// out-of-range index is not an error.
func (f *Folder) Photo(index int) *Photo {
	if index < 0 || index >= len(f.Photos) {
		return nil
	}
	return f.Photos[index]
}

// AddPhoto appends a photo at the end of the sequence.
func (f *Folder) AddPhoto(p *Photo) {
	f.Photos = append(f.Photos, p)
}

// RemovePhotosByID deletes every photo whose id is in ids, preserving the
// relative order of the survivors. Unknown ids are ignored. Returns the
// number of photos removed.
func (f *Folder) RemovePhotosByID(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	kept := f.Photos[:0]
	removed := 0
	for _, p := range f.Photos {
		if _, ok := doomed[p.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	f.Photos = kept
	return removed
}
