package resolve

import (
	"strings"

	"github.com/google/uuid"
)

// Candidate is one element of a collection viewed through its canonical
// name/title field.
type Candidate struct {
	Id   uuid.UUID
	Name string
}

// Strategy resolves a free-text entity reference against a collection.
// Implementations must be deterministic for identical inputs.
type Strategy interface {
	Resolve(reference string, candidates []Candidate) (Candidate, bool)
}

// Substring is the default strategy: case-insensitive containment against the
// canonical field, first match in collection order wins.
type Substring struct{}

func NewSubstring() Substring {
	return Substring{}
}

func (Substring) Resolve(reference string, candidates []Candidate) (Candidate, bool) {
	ref := strings.ToLower(strings.TrimSpace(reference))
	if ref == "" {
		return Candidate{}, false
	}

	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Name), ref) {
			return c, true
		}
	}
	return Candidate{}, false
}
