package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

// CurrencyRepo implementación del puerto CurrencyRepository.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador de persistencia para monedas.
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

type currencyRow struct {
	ID           int64           `db:"id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	Active       bool            `db:"active"`
}

func (row currencyRow) toEntity() *entity.Currency {
	return &entity.Currency{
		ID:           row.ID,
		Code:         row.Code,
		Name:         row.Name,
		ExchangeRate: row.ExchangeRate,
		Active:       row.Active,
	}
}

const currencyColumns = `id, code, name, exchange_rate, active`

// Create persiste una moneda. ErrDuplicate si el código ya existe.
func (r *CurrencyRepo) Create(ctx context.Context, currency *entity.Currency) (int64, error) {
	query := `
		INSERT INTO currencies (code, name, exchange_rate, active)
		VALUES (?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.q.GetContext(ctx, &id, r.q.Rebind(query),
		currency.Code, currency.Name, currency.ExchangeRate, currency.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, storageErr("insert currency", err)
	}
	currency.ID = id
	return id, nil
}

// GetByID obtiene una moneda por ID.
func (r *CurrencyRepo) GetByID(ctx context.Context, id int64) (*entity.Currency, error) {
	return r.getOne(ctx, "get currency", `WHERE id = ?`, id)
}

// GetByCode obtiene una moneda por código exacto.
func (r *CurrencyRepo) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	return r.getOne(ctx, "get currency by code", `WHERE code = ?`, code)
}

func (r *CurrencyRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ` + where
	var row currencyRow
	if err := r.q.GetContext(ctx, &row, r.q.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return row.toEntity(), nil
}

// ListActive monedas activas ordenadas por código.
func (r *CurrencyRepo) ListActive(ctx context.Context) ([]*entity.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE active = ? ORDER BY code`
	return r.list(ctx, "list active currencies", query, true)
}

// ListAll todas las monedas; la base primero y el resto por código.
func (r *CurrencyRepo) ListAll(ctx context.Context) ([]*entity.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies
		ORDER BY CASE WHEN code = ? THEN 0 ELSE 1 END, code`
	return r.list(ctx, "list currencies", query, entity.BaseCurrencyCode)
}

func (r *CurrencyRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Currency, error) {
	var rows []currencyRow
	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(query), args...); err != nil {
		return nil, storageErr(op, err)
	}
	out := make([]*entity.Currency, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Update aplica la máscara de campos. Las reglas de la moneda base se validan en el caso de uso.
func (r *CurrencyRepo) Update(ctx context.Context, id int64, patch entity.CurrencyPatch) error {
	if patch.IsEmpty() {
		return domain.InvalidInput("no hay campos para actualizar")
	}
	var (
		sets []string
		args []any
	)
	if patch.Code != nil {
		sets = append(sets, "code = ?")
		args = append(args, *patch.Code)
	}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.ExchangeRate != nil {
		sets = append(sets, "exchange_rate = ?")
		args = append(args, *patch.ExchangeRate)
	}
	if patch.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, *patch.Active)
	}
	args = append(args, id)

	query := `UPDATE currencies SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	res, err := r.q.ExecContext(ctx, r.q.Rebind(query), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("update currency", err)
	}
	return requireAffected(res, "update currency", domain.ErrCurrencyNotFound)
}

// Delete borra físicamente la moneda. Las ventas que la referencian se conservan.
func (r *CurrencyRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM currencies WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete currency", err)
	}
	return requireAffected(res, "delete currency", domain.ErrCurrencyNotFound)
}
