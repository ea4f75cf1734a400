// Package catalog loads the built-in property and agent catalog.
package catalog

import (
	"context"
	"fmt"
	"io"

	"estate/internal/api/specs/v1specs"
	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/storage"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Catalog is the content of a seed file:
//
//	{"properties": [...], "agents": [...]}
type Catalog struct {
	Properties []domain.Property
	Agents     []domain.AgentProfile
}

// Load decodes a catalog and checks every property.
func Load(r io.Reader) (Catalog, error) {
	var c Catalog
	d := jx.Decode(r, 64*1024)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "properties":
			return d.Arr(func(d *jx.Decoder) error {
				p, err := v1specs.DecodeProperty(d)
				if err != nil {
					return err //nolint: wrapcheck
				}
				c.Properties = append(c.Properties, p)

				return nil
			})
		case "agents":
			return d.Arr(func(d *jx.Decoder) error {
				a, err := v1specs.DecodeAgent(d)
				if err != nil {
					return err //nolint: wrapcheck
				}
				c.Agents = append(c.Agents, a)

				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return Catalog{}, errors.Wrap(err, "decode catalog")
	}

	for i := range c.Properties {
		if err := check(&c.Properties[i]); err != nil {
			return Catalog{}, errors.Wrapf(err, "property %d (%q)", i, c.Properties[i].Title)
		}
	}
	for i, a := range c.Agents {
		if a.Name == "" {
			return Catalog{}, errors.Errorf("agent %d has no name", i)
		}
	}

	return c, nil
}

func check(p *domain.Property) error {
	if p.Title == "" {
		return errors.New("missing title")
	}
	if p.Price <= 0 {
		return errors.New("price must be positive")
	}
	if !p.Type.Valid() {
		return errors.Errorf("unknown property type %q", p.Type)
	}
	if !p.ListingType.Valid() {
		return errors.Errorf("unknown listing type %q", p.ListingType)
	}

	images, err := listing.NormalizeURLs(p.Images)
	if err != nil {
		return errors.Wrap(err, "images")
	}
	p.Images = images

	return nil
}

// Store inserts the whole catalog in one transaction.
func Store(ctx context.Context, strg storage.Storage, c Catalog) error {
	return strg.WithTx(ctx, func(tx storage.AllStorage) error { //nolint: wrapcheck
		if len(c.Properties) > 0 {
			if _, err := tx.StoreProperties(ctx, c.Properties...); err != nil {
				return fmt.Errorf("could not store catalog properties: %w", err)
			}
		}
		if len(c.Agents) > 0 {
			if _, err := tx.StoreAgents(ctx, c.Agents...); err != nil {
				return fmt.Errorf("could not store catalog agents: %w", err)
			}
		}

		return nil
	})
}
