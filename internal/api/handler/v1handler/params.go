package v1handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"estate/pkg/domain"
	"estate/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// pathID parses the {id} route parameter.
func pathID[T any](r *http.Request, parse func(string) (T, error)) (T, error) {
	id, err := parse(chi.URLParam(r, "id"))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}

type queryParser struct {
	values url.Values
	err    error
}

func (p *queryParser) int64(name string) int64 {
	raw := p.values.Get(name)
	if raw == "" || p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		p.err = serrors.With(serrors.ErrBadRequest, "%s must be a non-negative integer", name)
	}

	return v
}

func (p *queryParser) float(name string) float64 {
	raw := p.values.Get(name)
	if raw == "" || p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		p.err = serrors.With(serrors.ErrBadRequest, "%s must be a non-negative number", name)
	}

	return v
}

func (p *queryParser) bool(name string) bool {
	raw := p.values.Get(name)
	if raw == "" || p.err != nil {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.err = serrors.With(serrors.ErrBadRequest, "%s must be a boolean", name)
	}

	return v
}

// list accepts repeated parameters as well as comma separated values.
func (p *queryParser) list(name string) []string {
	var res []string
	for _, raw := range p.values[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				res = append(res, strings.ToLower(v))
			}
		}
	}

	return res
}

// parseFilter reads the browse and map query parameters.
func parseFilter(values url.Values) (domain.PropertyFilter, error) {
	p := queryParser{values: values}
	filter := domain.PropertyFilter{
		MinPrice:     p.int64("minPrice"),
		MaxPrice:     p.int64("maxPrice"),
		MinBedrooms:  int(p.int64("bedrooms")),
		MinBathrooms: p.float("bathrooms"),
		City:         strings.TrimSpace(values.Get("city")),
		FeaturedOnly: p.bool("featured"),
	}
	if p.err != nil {
		return filter, p.err
	}
	if filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return filter, serrors.With(serrors.ErrBadRequest, "minPrice is greater than maxPrice")
	}

	for _, raw := range p.list("propertyType") {
		t := domain.PropertyType(raw)
		if !t.Valid() {
			return filter, serrors.With(serrors.ErrBadRequest, "unknown property type %q", raw)
		}
		filter.PropertyTypes = append(filter.PropertyTypes, t)
	}

	if raw := strings.ToLower(strings.TrimSpace(values.Get("listingType"))); raw != "" {
		filter.ListingType = domain.ListingType(raw)
		if !filter.ListingType.Valid() {
			return filter, serrors.With(serrors.ErrBadRequest, "unknown listing type %q", raw)
		}
	}

	return filter, nil
}

// parseLimit reads the limit parameter. Zero means the service default.
func parseLimit(values url.Values) (uint, error) {
	raw := values.Get("limit")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return uint(v), nil
}
