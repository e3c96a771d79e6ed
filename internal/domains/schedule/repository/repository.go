package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"barberia/infras/otel"
	"barberia/infras/postgres"
	"barberia/internal/domains/schedule/model"
	gDto "barberia/shared/dto"
	gRepo "barberia/shared/repository"
)

type Schedule interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BusinessHours, error)
	GetByWeekday(ctx context.Context, weekday int) (model.BusinessHours, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BusinessHours]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BusinessHours](model.EntityName, model.TableName, model.FieldWeekday, db, otel),
		db:         db,
		otel:       otel,
	}
}

// WeekdayFilter matches the single row for a weekday.
func WeekdayFilter(weekday int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldWeekday,
				Operator: gDto.FilterOperatorEq,
				Value:    weekday,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) GetByWeekday(ctx context.Context, weekday int) (model.BusinessHours, error) {
	return repo.Get(ctx, WeekdayFilter(weekday))
}
