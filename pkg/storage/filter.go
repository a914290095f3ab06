package storage

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type operator int

const (
	opEquals operator = iota
	opContainsFold
)

type condition struct {
	field string
	op    operator
	value any
}

// Filter is a conjunction of simple field conditions. The zero value and a
// nil *Filter both match every document.
type Filter struct {
	conditions []condition
}

func NewFilter() *Filter {
	return &Filter{}
}

// Equals requires field to equal value exactly.
func (f *Filter) Equals(field string, value any) *Filter {
	f.conditions = append(f.conditions, condition{field: field, op: opEquals, value: value})
	return f
}

// Contains requires field to contain text as a case-insensitive substring.
// Text is matched literally; an empty text adds no condition.
func (f *Filter) Contains(field, text string) *Filter {
	if text == "" {
		return f
	}
	f.conditions = append(f.conditions, condition{field: field, op: opContainsFold, value: text})
	return f
}

func (f *Filter) Empty() bool {
	return f == nil || len(f.conditions) == 0
}

func (f *Filter) BSON() bson.D {
	doc := bson.D{}
	if f == nil {
		return doc
	}
	for _, c := range f.conditions {
		switch c.op {
		case opEquals:
			doc = append(doc, bson.E{Key: c.field, Value: c.value})
		case opContainsFold:
			doc = append(doc, bson.E{Key: c.field, Value: primitive.Regex{
				Pattern: regexp.QuoteMeta(c.value.(string)),
				Options: "i",
			}})
		}
	}
	return doc
}
