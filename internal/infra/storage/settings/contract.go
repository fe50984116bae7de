package settings

import "github.com/barbearia/barbershop-service/pkg/dbmetrics"

// DBExecutor is the database surface the repository needs.
type DBExecutor = dbmetrics.DBExecutor
