package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(table string, model any) error
	InsertInto(ctx context.Context, table string, record any) error
	GetAllFrom(ctx context.Context, table string, dest any) error
	GetOneFrom(ctx context.Context, table string, column string, value any, dest any) error
	Close() error
}
