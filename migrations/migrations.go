package migrations

import "embed"

// FS SQL миграции схемы, применяются по возрастанию имени файла
//
//go:embed *.sql
var FS embed.FS
