package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orgs/config"
	"orgs/internal/domain/entity"
	domainerrors "orgs/internal/domain/errors"
	"orgs/internal/domain/repository"
	"orgs/internal/domain/service"
	"orgs/internal/errors"
	"orgs/internal/infra/metrics"
	"orgs/internal/usecase"
)

// fallback defaults keep the service usable when config is missing/invalid
const (
	defaultQueryTimeout = 5 * time.Second
	defaultPageLimit    = 50
	defaultMaxPageLimit = 500
)

// Search kinds used as metric labels.
const (
	kindSearch   = "search"
	kindName     = "name"
	kindBuilding = "building"
	kindActivity = "activity"
	kindGeo      = "geo"
)

type organizationService struct {
	orgRepo       repository.OrganizationRepository
	buildingRepo  repository.BuildingRepository
	activityIndex service.ActivityIndex
	cache         service.SearchCache
	logger        *slog.Logger

	timeout      time.Duration
	defaultLimit int
	maxLimit     int
	cacheTTL     time.Duration
}

// NewOrganizationService creates a new organization query service instance
func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	buildingRepo repository.BuildingRepository,
	activityIndex service.ActivityIndex,
	cache service.SearchCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrganizationUsecase {
	srv := &organizationService{
		orgRepo:       orgRepo,
		buildingRepo:  buildingRepo,
		activityIndex: activityIndex,
		cache:         cache,
		logger:        logger,
		timeout:       cfg.Query.Timeout,
		defaultLimit:  cfg.Query.DefaultLimit,
		maxLimit:      cfg.Query.MaxLimit,
	}

	if srv.timeout <= 0 {
		srv.timeout = defaultQueryTimeout
	}
	if srv.maxLimit <= 0 {
		srv.maxLimit = defaultMaxPageLimit
	}
	if srv.defaultLimit <= 0 {
		srv.defaultLimit = min(defaultPageLimit, srv.maxLimit)
	}
	if cfg.Cache != nil && cfg.Cache.Enabled {
		srv.cacheTTL = cfg.Cache.TTL
	}
	if srv.logger == nil {
		srv.logger = slog.Default()
	}

	return srv
}

// Search runs a composed search: every populated filter narrows the result.
func (srv *organizationService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.OrganizationPage, error) {
	if input == nil {
		input = &usecase.SearchInput{}
	}

	limit, err := srv.pageLimit(input.Limit)
	if err != nil {
		return nil, err
	}
	if input.Offset < 0 {
		return nil, domainerrors.ErrInvalidPagination.WithDetails("offset must not be negative")
	}
	if input.Geo != nil {
		if err := input.Geo.Validate(); err != nil {
			return nil, domainerrors.ErrInvalidGeoFilter.WithDetails(err.Error())
		}
	}

	name := strings.TrimSpace(input.Name)
	cacheKey := searchCacheKey(name, input, limit)

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	if page, ok := srv.cachedPage(ctx, cacheKey); ok {
		return page, nil
	}

	query := repository.OrganizationQuery{
		NameContains: name,
		Limit:        limit,
		Offset:       input.Offset,
	}

	if input.BuildingID != nil {
		query.BuildingIDs = []int64{*input.BuildingID}
	}

	if input.ActivityID != nil {
		closure, err := srv.activityIndex.Closure(ctx, *input.ActivityID)
		if err != nil {
			return nil, srv.translate(ctx, err, "resolve activity closure")
		}
		query.ActivityIDs = closure
	}

	if input.Geo != nil {
		buildings, err := srv.buildingsIn(ctx, input.Geo)
		if err != nil {
			return nil, err
		}
		query.BuildingIDs = intersect(query.BuildingIDs, buildingIDs(buildings))
		if len(query.BuildingIDs) == 0 {
			return srv.emptyPage(limit, input.Offset), nil
		}
	}

	organizations, total, err := srv.orgRepo.SearchOrganizations(ctx, query)
	if err != nil {
		return nil, srv.translate(ctx, err, "search organizations")
	}
	metrics.RecordSearchResult(kindSearch, len(organizations))

	page := &usecase.OrganizationPage{
		Organizations: organizations,
		Total:         total,
		Limit:         limit,
		Offset:        input.Offset,
	}
	srv.storePage(ctx, cacheKey, page)

	return page, nil
}

// SearchByName returns every organization whose name contains name, ignoring case.
func (srv *organizationService) SearchByName(ctx context.Context, name string) ([]*entity.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("search query must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	return srv.list(ctx, kindName, repository.OrganizationQuery{NameContains: name})
}

// GetOrganization returns a single organization.
func (srv *organizationService) GetOrganization(ctx context.Context, id int64) (*entity.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	organization, err := srv.orgRepo.FindOrganizationByID(ctx, id)
	if err != nil {
		return nil, srv.translate(ctx, err, fmt.Sprintf("organization %d", id))
	}

	return organization, nil
}

// GetBuilding returns a single building.
func (srv *organizationService) GetBuilding(ctx context.Context, id int64) (*entity.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	building, err := srv.buildingRepo.FindBuildingByID(ctx, id)
	if err != nil {
		return nil, srv.translate(ctx, err, fmt.Sprintf("building %d", id))
	}

	return building, nil
}

// ListByBuilding returns the organizations located in an existing building.
func (srv *organizationService) ListByBuilding(ctx context.Context, buildingID int64) ([]*entity.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	if _, err := srv.buildingRepo.FindBuildingByID(ctx, buildingID); err != nil {
		return nil, srv.translate(ctx, err, fmt.Sprintf("building %d", buildingID))
	}

	return srv.list(ctx, kindBuilding, repository.OrganizationQuery{BuildingIDs: []int64{buildingID}})
}

// ListByActivity returns organizations tagged with the activity or any descendant within the tree bound.
func (srv *organizationService) ListByActivity(ctx context.Context, activityID int64) ([]*entity.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	closure, err := srv.activityIndex.Closure(ctx, activityID)
	if err != nil {
		return nil, srv.translate(ctx, err, fmt.Sprintf("activity %d", activityID))
	}

	return srv.list(ctx, kindActivity, repository.OrganizationQuery{ActivityIDs: closure})
}

// GeoRadius returns buildings within meters of center and the organizations inside them.
func (srv *organizationService) GeoRadius(ctx context.Context, center entity.Coordinate, meters float64) (*usecase.GeoSearchResult, error) {
	return srv.geoSearch(ctx, entity.RadiusFilter{Center: center, Meters: meters})
}

// GeoRectangle returns buildings inside rect and the organizations inside them.
func (srv *organizationService) GeoRectangle(ctx context.Context, rect entity.RectangleFilter) (*usecase.GeoSearchResult, error) {
	return srv.geoSearch(ctx, rect)
}

func (srv *organizationService) geoSearch(ctx context.Context, filter entity.GeoFilter) (*usecase.GeoSearchResult, error) {
	if err := filter.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidGeoFilter.WithDetails(err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	buildings, err := srv.buildingsIn(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &usecase.GeoSearchResult{
		Organizations: []*entity.Organization{},
		Buildings:     buildings,
	}
	if len(buildings) == 0 {
		metrics.RecordSearchResult(kindGeo, 0)

		return result, nil
	}

	organizations, err := srv.list(ctx, kindGeo, repository.OrganizationQuery{BuildingIDs: buildingIDs(buildings)})
	if err != nil {
		return nil, err
	}
	result.Organizations = organizations

	return result, nil
}

// buildingsIn runs the storage box pre-filter and keeps buildings the exact predicate accepts.
func (srv *organizationService) buildingsIn(ctx context.Context, filter entity.GeoFilter) ([]*entity.Building, error) {
	candidates, err := srv.buildingRepo.FindBuildingsInBound(ctx, filter.Bound())
	if err != nil {
		return nil, srv.translate(ctx, err, "find buildings in bound")
	}

	buildings := make([]*entity.Building, 0, len(candidates))
	for _, building := range candidates {
		if filter.Contains(building.Coordinate()) {
			buildings = append(buildings, building)
		}
	}

	return buildings, nil
}

func (srv *organizationService) list(ctx context.Context, kind string, query repository.OrganizationQuery) ([]*entity.Organization, error) {
	organizations, _, err := srv.orgRepo.SearchOrganizations(ctx, query)
	if err != nil {
		return nil, srv.translate(ctx, err, "search organizations")
	}
	metrics.RecordSearchResult(kind, len(organizations))

	return organizations, nil
}

func (srv *organizationService) pageLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return srv.defaultLimit, nil
	case limit < 0:
		return 0, domainerrors.ErrInvalidPagination.WithDetails("limit must be positive")
	case limit > srv.maxLimit:
		return 0, domainerrors.ErrInvalidPagination.WithDetails("limit must not exceed " + strconv.Itoa(srv.maxLimit))
	default:
		return limit, nil
	}
}

func (srv *organizationService) emptyPage(limit, offset int) *usecase.OrganizationPage {
	metrics.RecordSearchResult(kindSearch, 0)

	return &usecase.OrganizationPage{
		Organizations: []*entity.Organization{},
		Limit:         limit,
		Offset:        offset,
	}
}

// translate maps storage failures onto domain error kinds.
func (srv *organizationService) translate(ctx context.Context, err error, operation string) error {
	switch {
	case errors.Is(err, repository.ErrOrganizationNotFound):
		return domainerrors.ErrOrganizationNotFound.WithDetails(operation)
	case errors.Is(err, repository.ErrBuildingNotFound):
		return domainerrors.ErrBuildingNotFound.WithDetails(operation)
	case errors.Is(err, repository.ErrActivityNotFound):
		return domainerrors.ErrActivityNotFound.WithDetails(operation)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domainerrors.ErrQueryTimeout.WithDetails(operation)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, operation)
}

func (srv *organizationService) cachedPage(ctx context.Context, key string) (*usecase.OrganizationPage, bool) {
	if srv.cache == nil || srv.cacheTTL <= 0 {
		return nil, false
	}

	payload, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		srv.logger.WarnContext(ctx, "Search cache lookup failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	if !ok {
		metrics.RecordCacheLookup(metrics.CacheMiss)

		return nil, false
	}

	var page usecase.OrganizationPage
	if err := json.Unmarshal(payload, &page); err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		srv.logger.WarnContext(ctx, "Search cache entry unreadable", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	metrics.RecordCacheLookup(metrics.CacheHit)

	return &page, true
}

func (srv *organizationService) storePage(ctx context.Context, key string, page *usecase.OrganizationPage) {
	if srv.cache == nil || srv.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(page)
	if err != nil {
		srv.logger.WarnContext(ctx, "Search cache encode failed", slog.Any("error", err))

		return
	}
	if err := srv.cache.Set(ctx, key, payload, srv.cacheTTL); err != nil {
		srv.logger.WarnContext(ctx, "Search cache store failed", slog.String("key", key), slog.Any("error", err))
	}
}

// searchCacheKey normalizes a search so equivalent inputs share an entry.
func searchCacheKey(name string, input *usecase.SearchInput, limit int) string {
	var key strings.Builder
	key.WriteString("v1|name=")
	key.WriteString(strconv.Quote(strings.ToLower(name)))
	if input.BuildingID != nil {
		key.WriteString("|building=" + strconv.FormatInt(*input.BuildingID, 10))
	}
	if input.ActivityID != nil {
		key.WriteString("|activity=" + strconv.FormatInt(*input.ActivityID, 10))
	}
	if input.Geo != nil {
		key.WriteString("|geo=" + input.Geo.Key())
	}
	key.WriteString("|limit=" + strconv.Itoa(limit))
	key.WriteString("|offset=" + strconv.Itoa(input.Offset))

	return key.String()
}

func buildingIDs(buildings []*entity.Building) []int64 {
	ids := make([]int64, 0, len(buildings))
	for _, building := range buildings {
		ids = append(ids, building.ID)
	}

	return ids
}

// intersect narrows current by allowed; a nil current means unconstrained.
func intersect(current, allowed []int64) []int64 {
	if current == nil {
		return allowed
	}

	set := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		set[id] = struct{}{}
	}

	result := make([]int64, 0, len(current))
	for _, id := range current {
		if _, ok := set[id]; ok {
			result = append(result, id)
		}
	}

	return result
}
