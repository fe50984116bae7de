package plan

import "errors"

var (
	// ErrPlanNotFound is returned when no plan row matches the lookup.
	ErrPlanNotFound = errors.New("plan.repository: plan not found")

	// ErrDuplicateName is returned when the unique plan name constraint fires.
	ErrDuplicateName = errors.New("plan.repository: plan name already exists")

	// ErrPlanInUse is returned when deleting a plan still referenced by
	// subscriptions.
	ErrPlanInUse = errors.New("plan.repository: plan is referenced by subscriptions")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("plan.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("plan.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("plan.repository: failed to scan row")
)
