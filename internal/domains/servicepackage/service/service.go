package service

import (
	"context"
	"fmt"
	"furever/config"
	"furever/infras/otel"
	providerModel "furever/internal/domains/provider/model"
	providerRepo "furever/internal/domains/provider/repository"
	"furever/internal/domains/servicepackage/model"
	"furever/internal/domains/servicepackage/model/dto"
	"furever/internal/domains/servicepackage/repository"
	"furever/shared"
	"furever/shared/cache"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPackage    = "package:get"
	cacheGetAllPackage = "package:gets"
	cacheCountPackage  = "package:count"
)

type ServicePackage interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.ServicePackage
	providerRepo providerRepo.Provider
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.ServicePackage, providerRepo providerRepo.Provider, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ServicePackage {
	return &serviceImpl{
		repo:         repo,
		providerRepo: providerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// providerForUser resolves the provider profile owned by the authenticated user.
func (s *serviceImpl) providerForUser(ctx context.Context) (providerModel.Provider, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return providerModel.Provider{}, failure.Unauthorized("missing authenticated user")
	}

	provider, err := s.providerRepo.Get(ctx, shared.FilterByID(userID, providerModel.FieldUserID, providerModel.TableName))
	if err != nil {
		return providerModel.Provider{}, fmt.Errorf("failed to get provider profile: %w", err)
	}

	if provider.ID == 0 {
		return providerModel.Provider{}, failure.Forbidden("no provider profile for this account")
	}

	return provider, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.providerForUser(ctx)
	if err != nil {
		return 0, err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	id, err = s.repo.InsertID(ctx, req.ToModel(provider.ID, userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create service package")

		return 0, fmt.Errorf("failed to create service package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service packages")

		return res, fmt.Errorf("failed to count service packages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service packages")

		return res, fmt.Errorf("failed to get service packages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service packages")

		return res, fmt.Errorf("failed to count service packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service package count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackage, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service package")

		return res, fmt.Errorf("failed to get service package: %w", err)
	}

	if pkg.ID == 0 {
		return res, failure.NotFound("service package not found")
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePackageRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	pkg, err := s.ownedPackage(ctx, id)
	if err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, userID)

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(pkg.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service package")

		return fmt.Errorf("failed to update service package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.ownedPackage(ctx, id)
	if err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(dto.UpdatePackageRequest{Active: boolPtr(false)}, userID)

	// Packages are deactivated, never hard-deleted: existing bookings keep their reference.
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(pkg.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate service package")

		return fmt.Errorf("failed to deactivate service package: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ownedPackage(ctx context.Context, id int64) (model.ServicePackage, error) {
	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service package")

		return pkg, fmt.Errorf("failed to get service package: %w", err)
	}

	if pkg.ID == 0 {
		return pkg, failure.NotFound("service package not found")
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return pkg, nil
	}

	provider, err := s.providerForUser(ctx)
	if err != nil {
		return pkg, err
	}

	if pkg.ProviderID != provider.ID {
		return pkg, failure.ResourceRestrictedError()
	}

	return pkg, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, fmt.Sprintf("%d", id))); err != nil {
			log.Error().Err(err).Msg("failed to delete service package from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()
}

func boolPtr(b bool) *bool {
	return &b
}
