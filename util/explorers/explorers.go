package explorers

import "context"

// DefaultPageSize is how many extrinsics the activity panel asks for.
const DefaultPageSize = 10

type BlockExplorer interface {
	// Extrinsics returns one page of the extrinsics signed by address,
	// newest first.
	Extrinsics(ctx context.Context, address string, page, row int) ([]Extrinsic, error)
}
