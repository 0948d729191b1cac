package attendance

import (
	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
