package model

import "fmt"

// Dataset holds the bookmarks loaded at startup. It is never mutated after
// NewDataset returns.
type Dataset struct {
	Bookmarks []Bookmark
	Rejected  []Rejection // records skipped at load time
}

// Rejection describes a source record that was skipped while loading.
type Rejection struct {
	Index int // position in the source
	ID    string
	Title string
	Err   error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("record %d (id=%q title=%q): %v", r.Index, r.ID, r.Title, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// NewDataset validates records in source order and keeps the well-formed ones.
// Records missing a required field or repeating an earlier id are skipped and
// reported in Rejected.
func NewDataset(records []Bookmark) *Dataset {
	ds := &Dataset{
		Bookmarks: make([]Bookmark, 0, len(records)),
		Rejected:  []Rejection{},
	}

	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			ds.Rejected = append(ds.Rejected, Rejection{Index: i, ID: r.ID, Title: r.Title, Err: err})
			continue
		}
		if seen[r.ID] {
			ds.Rejected = append(ds.Rejected, Rejection{Index: i, ID: r.ID, Title: r.Title, Err: ErrDuplicateID})
			continue
		}
		seen[r.ID] = true

		if r.Tags == nil {
			r.Tags = []string{}
		}
		ds.Bookmarks = append(ds.Bookmarks, r)
	}

	return ds
}

// Len returns the number of loaded bookmarks.
func (d *Dataset) Len() int {
	return len(d.Bookmarks)
}

// GetBookmarkByID finds a bookmark by ID.
func (d *Dataset) GetBookmarkByID(id string) (Bookmark, bool) {
	for _, b := range d.Bookmarks {
		if b.ID == id {
			return b, true
		}
	}
	return Bookmark{}, false
}
