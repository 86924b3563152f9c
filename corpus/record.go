package corpus

//go:generate go run ../cmd/musgen

import "time"

// Record is the stored form of a note. It is what backends persist and
// what note handles read from.
type Record struct {
	UUID        string
	Name        string
	Tags        []string
	Created     time.Time
	Updated     time.Time
	Content     string
	Attachments []Attachment
	Images      []Image
}
