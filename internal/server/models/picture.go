package models

import "time"

// ProfilePicture is the metadata record for an uploaded profile image. The
// binary itself lives in the file store under a key derived from ID and the
// original file extension; PhotoURL is the resolved public URL and is only
// persisted after the binary has been durably written.
type ProfilePicture struct {
	ID          string
	Title       string
	PhotoURL    string
	UserID      string
	CreatedDate time.Time
}

// Clone returns a copy of the picture record.
func (p *ProfilePicture) Clone() *ProfilePicture {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
