package appointment

import "github.com/geekpf/agenda2/pkg/txmanager"

// Переиспользуем интерфейс из txmanager для работы с БД.
// Поддерживает *sql.DB и *sql.Tx (через контекст)
type DBExecutor = txmanager.DBExecutor
