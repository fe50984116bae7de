package client

import "github.com/barbearia/barbershop-service/pkg/dbmetrics"

// DBExecutor is the database surface the repository needs. Reused from
// dbmetrics so both *sql.DB and the instrumented wrapper fit.
type DBExecutor = dbmetrics.DBExecutor
