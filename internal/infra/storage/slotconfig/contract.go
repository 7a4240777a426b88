package slotconfig

import "github.com/hospital/turns-service/pkg/dbmetrics"

// DBExecutor общий интерфейс для *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
