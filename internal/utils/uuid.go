package utils

import "github.com/google/uuid"

// ObjectIDs names uploaded pictures. Ids are UUIDv7 so a user's pictures sort
// by upload time inside a bucket listing.
type ObjectIDs struct {
	source func() (uuid.UUID, error)
}

func NewObjectIDs() *ObjectIDs {
	return &ObjectIDs{source: uuid.NewV7}
}

// Next returns a fresh id. A failing v7 source degrades to a random UUIDv4.
func (g *ObjectIDs) Next() string {
	id, err := g.source()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
