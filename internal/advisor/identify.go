package advisor

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// Identification is the result of recognising a plant from a photo.
type Identification struct {
	Species    Species
	Confidence float64
}

type Identifier interface {
	Identify(ctx context.Context, image []byte) (*Identification, error)
}

// StaticIdentifier picks a catalog entry from a hash of the image bytes.
// The same photo always yields the same species.
type StaticIdentifier struct{}

func (StaticIdentifier) Identify(ctx context.Context, image []byte) (*Identification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	h := fnv.New32a()
	_, _ = h.Write(image)
	sum := h.Sum32()

	return &Identification{
		Species:    catalog[int(sum%uint32(len(catalog)))],
		Confidence: 0.80 + float64(sum%20)/100,
	}, nil
}
