package store

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// RoleRepository adds the staff head count the role listing endpoints expose.
type RoleRepository struct {
	*Repository[Role]
}

func NewRoleRepository(repo *Repository[Role]) *RoleRepository {
	return &RoleRepository{Repository: repo}
}

// ListWithStaffCount returns roles filtered by the active flag, each with
// the number of active staff members holding it.
func (r *RoleRepository) ListWithStaffCount(ctx context.Context, active bool) ([]Role, error) {
	var records []Role
	err := r.DB().NewSelect().Model(&records).
		ColumnExpr("?TableAlias.*").
		ColumnExpr("(SELECT count(*) FROM staff AS stf WHERE stf.role_id = ?TableAlias.id AND stf.is_active) AS staff_count").
		Where("?TableAlias.is_active = ?", active).
		OrderExpr("?TableAlias.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list roles")
	}
	return records, nil
}
