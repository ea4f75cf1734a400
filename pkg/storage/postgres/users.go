package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estate/pkg/domain"
	"estate/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	usersTable = "users"

	uniqueViolation = "23505"
)

// isUniqueViolation reports whether err was caused by a unique constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// likePattern builds a case-insensitive substring pattern, escaping LIKE
// wildcards in the query.
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + r.Replace(strings.TrimSpace(query)) + "%"
}

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	row.Email = strings.ToLower(strings.TrimSpace(row.Email))

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Func("lower", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SearchUsers matches the query against name and email with ILIKE.
func (p *PgSQL) SearchUsers(ctx context.Context, query string, limit uint) ([]domain.User, error) {
	ds := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit)
	if strings.TrimSpace(query) != "" {
		pattern := likePattern(query)
		ds = ds.Where(goqu.Or(
			goqu.I("name").ILike(pattern),
			goqu.I("email").ILike(pattern),
		))
	}

	var rows []PgUser
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search users in pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}

func (p *PgSQL) UpdateUserStatus(ctx context.Context,
	id domain.UserID,
	status domain.UserStatus) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
