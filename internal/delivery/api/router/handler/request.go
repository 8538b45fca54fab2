package handler

import (
	"strings"

	domainerrors "orgs/internal/domain/errors"
	"orgs/internal/domain/entity"
	"orgs/internal/errors"

	"github.com/labstack/echo/v4"
)

// IDRequest carries a numeric path identifier.
type IDRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

// RadiusRequest is the query of a radius search; all three parameters are required.
type RadiusRequest struct {
	Lat     float64 `query:"lat"`
	Lon     float64 `query:"lon"`
	RadiusM float64 `query:"r_m"`
}

// RectangleRequest is the query of a rectangle search; all four parameters are required.
type RectangleRequest struct {
	MinLat float64 `query:"min_lat"`
	MaxLat float64 `query:"max_lat"`
	MinLon float64 `query:"min_lon"`
	MaxLon float64 `query:"max_lon"`
}

var (
	radiusParams    = []string{"lat", "lon", "r_m"}
	rectangleParams = []string{"min_lat", "max_lat", "min_lon", "max_lon"}
)

// bind binds path and query parameters into req and validates it. Failures
// are returned as InvalidArgument app errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(bindDetails(err))
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return nil
}

func bindDetails(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "malformed request parameters"
}

// presentParams returns which of names appear in the query string.
func presentParams(c echo.Context, names []string) (present, missing []string) {
	query := c.QueryParams()
	for _, name := range names {
		if query.Has(name) {
			present = append(present, name)
		} else {
			missing = append(missing, name)
		}
	}

	return present, missing
}

// blankParams returns which of names appear in the query string without a value.
func blankParams(c echo.Context, names []string) []string {
	query := c.QueryParams()
	var blank []string
	for _, name := range names {
		if query.Has(name) && strings.TrimSpace(query.Get(name)) == "" {
			blank = append(blank, name)
		}
	}

	return blank
}

// optionalID returns nil when name is absent and rejects a present but empty value.
func optionalID(c echo.Context, name string, value int64) (*int64, error) {
	if !c.QueryParams().Has(name) {
		return nil, nil
	}
	if blank := blankParams(c, []string{name}); len(blank) > 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(name + " must not be empty")
	}

	return &value, nil
}

// geoFilterFromQuery builds the optional geo filter of a composed search.
// A partially specified filter, or both kinds at once, is invalid.
func geoFilterFromQuery(c echo.Context, radius RadiusRequest, rect RectangleRequest) (entity.GeoFilter, error) {
	radiusPresent, radiusMissing := presentParams(c, radiusParams)
	rectPresent, rectMissing := presentParams(c, rectangleParams)

	switch {
	case len(radiusPresent) > 0 && len(rectPresent) > 0:
		return nil, domainerrors.ErrInvalidGeoFilter.WithDetails("radius and rectangle parameters are mutually exclusive")
	case len(radiusPresent) > 0:
		if len(radiusMissing) > 0 {
			return nil, missingGeoParams(radiusMissing)
		}
		if blank := blankParams(c, radiusParams); len(blank) > 0 {
			return nil, blankGeoParams(blank)
		}

		return radius.filter(), nil
	case len(rectPresent) > 0:
		if len(rectMissing) > 0 {
			return nil, missingGeoParams(rectMissing)
		}
		if blank := blankParams(c, rectangleParams); len(blank) > 0 {
			return nil, blankGeoParams(blank)
		}

		return rect.filter(), nil
	default:
		return nil, nil
	}
}

func requireGeoParams(c echo.Context, names []string) error {
	if _, missing := presentParams(c, names); len(missing) > 0 {
		return missingGeoParams(missing)
	}
	if blank := blankParams(c, names); len(blank) > 0 {
		return blankGeoParams(blank)
	}

	return nil
}

func missingGeoParams(missing []string) error {
	return domainerrors.ErrInvalidGeoFilter.WithDetails("missing " + strings.Join(missing, ", "))
}

func blankGeoParams(blank []string) error {
	return domainerrors.ErrInvalidGeoFilter.WithDetails("empty " + strings.Join(blank, ", "))
}

func (r RadiusRequest) filter() entity.RadiusFilter {
	return entity.RadiusFilter{
		Center: entity.Coordinate{Lat: r.Lat, Lon: r.Lon},
		Meters: r.RadiusM,
	}
}

func (r RectangleRequest) filter() entity.RectangleFilter {
	return entity.RectangleFilter{
		MinLat: r.MinLat,
		MaxLat: r.MaxLat,
		MinLon: r.MinLon,
		MaxLon: r.MaxLon,
	}
}
