package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// PostgresDB is a thin gorm wrapper keyed by table name, so the same model
// can back multiple structurally identical tables.
type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(table string, model any) error {
	if err := f.DB.Table(table).AutoMigrate(model); err != nil {
		return fmt.Errorf("failed to migrate table %q: %w", table, err)
	}

	return nil
}

func (f *PostgresDB) InsertInto(ctx context.Context, table string, record any) error {
	if err := f.DB.WithContext(ctx).Table(table).Create(record).Error; err != nil {
		return fmt.Errorf("insert into %q: %w", table, err)
	}

	return nil
}

func (f *PostgresDB) GetAllFrom(ctx context.Context, table string, dest any) error {
	tx := f.DB.WithContext(ctx).Table(table).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records from %q: %w", table, tx.Error)
	}

	return nil
}

func (f *PostgresDB) GetOneFrom(ctx context.Context, table string, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Table(table).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q from %q: %w", column, table, err)
	}

	return nil
}

// Close releases the underlying sql connection pool.
func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	return sqlDB.Close()
}
