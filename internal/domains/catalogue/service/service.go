package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"barberia/config"
	"barberia/infras/otel"
	"barberia/infras/s3"
	"barberia/internal/domains/catalogue/model"
	"barberia/internal/domains/catalogue/model/dto"
	"barberia/internal/domains/catalogue/repository"
	"barberia/shared"
	"barberia/shared/cache"
	"barberia/shared/constant"
	gDto "barberia/shared/dto"
	"barberia/shared/failure"
)

const (
	cacheGetCatalogue    = "catalogue:get"
	cacheGetAllCatalogue = "catalogue:gets"
	cacheCountCatalogue  = "catalogue:count"
)

type Catalogue interface {
	Create(ctx context.Context, req dto.CreateCatalogueItemRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCatalogueResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CatalogueItemResponse, error)
	Update(ctx context.Context, req dto.UpdateCatalogueItemRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Catalogue
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Catalogue, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Catalogue {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCatalogueItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create catalogue item")

		return fmt.Errorf("failed to create catalogue item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCatalogue)
		shared.InvalidateCaches(c, s.cache, cacheCountCatalogue)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCatalogueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCatalogue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalogue")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count catalogue items")

		return res, fmt.Errorf("failed to count catalogue items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalogue items")

		return res, fmt.Errorf("failed to get catalogue items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalogue to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCatalogue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count catalogue items")

		return res, fmt.Errorf("failed to count catalogue items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalogue count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CatalogueItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCatalogue, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalogue item")

		return res, fmt.Errorf("failed to get catalogue item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("catalogue item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalogue item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCatalogueItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalogue item")

		return fmt.Errorf("failed to get catalogue item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("catalogue item not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update catalogue item")

		return fmt.Errorf("failed to update catalogue item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCatalogue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete catalogue item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCatalogue)
		shared.InvalidateCaches(c, s.cache, cacheCountCatalogue)

		// A replaced image leaves an orphaned object behind.
		if req.Image != constant.Empty && item.Image != constant.Empty && req.Image != item.Image {
			s.deleteImage(c, item.Image)
		}
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalogue item")

		return fmt.Errorf("failed to get catalogue item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("catalogue item not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete catalogue item")

		return fmt.Errorf("failed to delete catalogue item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCatalogue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete catalogue item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCatalogue)
		shared.InvalidateCaches(c, s.cache, cacheCountCatalogue)

		if item.Image != constant.Empty {
			s.deleteImage(c, item.Image)
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	url, err := s.s3.UploadFile(ctx, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromModel(url, req.Image.Filename)

	return res, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	objectName := s.s3.GetObjectNameFromURL(imageURL)
	if objectName == constant.Empty {
		log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("url", imageURL).Msg("failed to delete image from S3")
	}
}
