package migrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var (
	// ErrReadMigrations возвращается, если не удалось прочитать файлы миграций
	ErrReadMigrations = errors.New("migrator: failed to read migrations")

	// ErrApplyMigration возвращается, если миграция завершилась ошибкой. Вся пачка откатывается
	ErrApplyMigration = errors.New("migrator: failed to apply migration")
)

const historyTable = "schema_migrations"

const createHistoryTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)`

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Migrator применяет *.sql файлы по возрастанию имени и ведет историю в schema_migrations
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	files     fs.FS
}

// New создает мигратор поверх файловой системы с миграциями (обычно migrations.FS)
func New(db dbmetrics.DBExecutor, txManager TransactionManager, files fs.FS) *Migrator {
	return &Migrator{db: db, txManager: txManager, files: files}
}

// Up применяет все еще не примененные миграции в одной транзакции
// и возвращает их версии в порядке применения
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	versions, err := m.versions()
	if err != nil {
		return nil, err
	}

	var applied []string

	err = m.txManager.Do(ctx, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, m.db)

		if _, err := executor.ExecContext(txCtx, createHistoryTable); err != nil {
			return fmt.Errorf("%w: create history table: %v", ErrApplyMigration, err)
		}

		done, err := m.appliedVersions(txCtx, executor)
		if err != nil {
			return err
		}

		for _, version := range versions {
			if done[version] {
				continue
			}

			body, err := fs.ReadFile(m.files, version)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrReadMigrations, version, err)
			}
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrApplyMigration, version, err)
			}

			query, args, err := psqlbuilder.Insert(historyTable).Columns("version").Values(version).ToSql()
			if err != nil {
				return fmt.Errorf("%w: build history insert: %v", ErrApplyMigration, err)
			}
			if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
				return fmt.Errorf("%w: record %s: %v", ErrApplyMigration, version, err)
			}

			applied = append(applied, version)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}

func (m *Migrator) versions() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	// fs.ReadDir возвращает записи, отсортированные по имени
	var versions []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		versions = append(versions, e.Name())
	}
	return versions, nil
}

func (m *Migrator) appliedVersions(ctx context.Context, executor dbmetrics.DBExecutor) (map[string]bool, error) {
	query, args, err := psqlbuilder.Select("version").From(historyTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build history query: %v", ErrApplyMigration, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: read history: %v", ErrApplyMigration, err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("%w: scan history: %v", ErrApplyMigration, err)
		}
		done[strings.TrimSpace(version)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read history: %v", ErrApplyMigration, err)
	}

	return done, nil
}
