package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"barberia/infras/otel"
	"barberia/infras/postgres"
	"barberia/internal/domains/barber/model"
	gDto "barberia/shared/dto"
	gRepo "barberia/shared/repository"
)

type Barber interface {
	Insert(ctx context.Context, model model.Barber) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Barber, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Barber, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Barber]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Barber {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Barber](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
