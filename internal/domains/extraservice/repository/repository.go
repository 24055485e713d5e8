package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lagovibes/infras/otel"
	"lagovibes/infras/postgres"
	"lagovibes/internal/domains/extraservice/model"
	gDto "lagovibes/shared/dto"
	gRepo "lagovibes/shared/repository"
)

type ExtraService interface {
	Insert(ctx context.Context, model model.ExtraService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ExtraService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ExtraService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ExtraService]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ExtraService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ExtraService](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
