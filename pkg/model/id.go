package model

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid identifier")

// ID is the storage-generated identifier of a document. Clients only ever see
// its 24-character hex form.
type ID struct {
	oid primitive.ObjectID
}

func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{oid: oid}, nil
}

func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

func IDFromObjectID(oid primitive.ObjectID) ID {
	return ID{oid: oid}
}

func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

func (id ID) String() string {
	return id.oid.Hex()
}

func (id ID) IsZero() bool {
	return id.oid.IsZero()
}
