package parser

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/forest"
)

// ParseAll parses several terminal sequences concurrently over the shared,
// read-only grammar. Each parse owns its chart exclusively, so rule
// application never crosses parses. Results are aligned with the inputs.
// The first failing parse cancels the remaining ones.
func (p *Parser) ParseAll(ctx context.Context, inputs [][]charta.Token) ([]*forest.Sequence, error) {
	results := make([]*forest.Sequence, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, terminals := range inputs {
		i, terminals := i, terminals
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq, err := p.Parse(terminals)
			if err != nil {
				return err
			}
			results[i] = seq
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
