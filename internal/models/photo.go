package models

// Photo is one stored image. DataURL holds the full image bytes as a
// self-contained data URL, so a photo round-trips through JSON without a
// separate binary side-channel. Name is the original filename; it is purely
// descriptive and used as the default download name.
type Photo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DataURL string `json:"dataURL"`
}
