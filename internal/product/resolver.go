package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// Resolver looks up product information by barcode.
// Implementations return domain.ErrProductNotFound when the barcode is unknown
// and domain.ErrProductLookupFailed when the source could not be queried.
type Resolver interface {
	Lookup(ctx context.Context, barcode string) (*domain.Product, error)
}

// Chain tries each resolver in order and returns the first hit
type Chain struct {
	resolvers []Resolver
}

// NewChain creates a resolver chain
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Lookup returns the first resolver's product. When nobody has it, the result
// is ErrProductLookupFailed if any resolver failed and ErrProductNotFound otherwise.
func (c *Chain) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	log := logger.FromContext(ctx)

	var lastFailure error
	for _, r := range c.resolvers {
		p, err := r.Lookup(ctx, barcode)
		if err == nil {
			return p, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrProductLookupFailed, ctxErr)
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			continue
		}
		log.Warn(LogMsgResolverFailed, "barcode", barcode, "error", err)
		lastFailure = err
	}

	if lastFailure != nil {
		if errors.Is(lastFailure, domain.ErrProductLookupFailed) {
			return nil, lastFailure
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProductLookupFailed, lastFailure)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, barcode)
}
