package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo libro de ventas: solo inserción y lectura.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

type saleRow struct {
	ID           int64               `db:"id"`
	ProductID    int64               `db:"product_id"`
	Quantity     int                 `db:"quantity"`
	UnitPrice    decimal.Decimal     `db:"unit_price"`
	CurrencyID   int64               `db:"currency_id"`
	TotalBase    decimal.Decimal     `db:"total_base"`
	CreatedAt    time.Time           `db:"created_at"`
	ProductName  string              `db:"product_name"`
	CurrencyCode string              `db:"currency_code"`
	CurrencyRate decimal.NullDecimal `db:"currency_rate"`
}

// Create inserta una venta. No valida referencias: eso ocurre dentro de la tx del caso de uso.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (product_id, quantity, unit_price, currency_id, total_base, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.q.GetContext(ctx, &id, r.q.Rebind(query),
		sale.ProductID, sale.Quantity, sale.UnitPrice, sale.CurrencyID, sale.TotalBase,
		dbTime(sale.CreatedAt),
	)
	if err != nil {
		return 0, storageErr("insert sale", err)
	}
	sale.ID = id
	return id, nil
}

// List ventas en [from, to) de más reciente a más antigua, con nombre de producto y código
// de moneda resueltos por LEFT JOIN. Las referencias huérfanas se leen con placeholders.
func (r *SaleRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	args := []any{entity.DeletedProductLabel, entity.DeletedCurrencyLabel}
	var where []string
	if from != nil {
		where = append(where, "s.created_at >= ?")
		args = append(args, dbTime(*from))
	}
	if to != nil {
		where = append(where, "s.created_at < ?")
		args = append(args, dbTime(*to))
	}

	var b strings.Builder
	b.WriteString(`
		SELECT s.id, s.product_id, s.quantity, s.unit_price, s.currency_id, s.total_base, s.created_at,
		       COALESCE(p.name, ?) AS product_name,
		       COALESCE(c.code, ?) AS currency_code,
		       c.exchange_rate AS currency_rate
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN currencies c ON c.id = s.currency_id`)
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY s.created_at DESC, s.id DESC")

	var rows []saleRow
	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(b.String()), args...); err != nil {
		return nil, storageErr("list sales", err)
	}
	out := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		s := &entity.Sale{
			ID:           row.ID,
			ProductID:    row.ProductID,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			CurrencyID:   row.CurrencyID,
			TotalBase:    row.TotalBase,
			CreatedAt:    row.CreatedAt,
			ProductName:  row.ProductName,
			CurrencyCode: row.CurrencyCode,
		}
		if row.CurrencyRate.Valid {
			rate := row.CurrencyRate.Decimal
			s.CurrencyRate = &rate
		}
		out = append(out, s)
	}
	return out, nil
}

// Aggregate cuenta ventas, suma total_base y unidades en [from, to).
// En SQLite los importes son TEXT y SUM los convertiría a REAL: se suman en Go con decimal.
func (r *SaleRepo) Aggregate(ctx context.Context, from, to time.Time) (repository.SalesAggregate, error) {
	if r.q.DriverName() == sqliteDialect.name {
		return r.aggregateInMemory(ctx, from, to)
	}
	query := `
		SELECT COUNT(*) AS sales_count,
		       COALESCE(SUM(total_base), 0) AS revenue_base,
		       COALESCE(SUM(quantity), 0) AS units_sold
		FROM sales
		WHERE created_at >= ? AND created_at < ?`
	var row struct {
		Count       int64           `db:"sales_count"`
		RevenueBase decimal.Decimal `db:"revenue_base"`
		UnitsSold   int64           `db:"units_sold"`
	}
	if err := r.q.GetContext(ctx, &row, r.q.Rebind(query), dbTime(from), dbTime(to)); err != nil {
		return repository.SalesAggregate{}, storageErr("aggregate sales", err)
	}
	return repository.SalesAggregate{
		Count:       row.Count,
		RevenueBase: row.RevenueBase,
		UnitsSold:   row.UnitsSold,
	}, nil
}

func (r *SaleRepo) aggregateInMemory(ctx context.Context, from, to time.Time) (repository.SalesAggregate, error) {
	query := `SELECT total_base, quantity FROM sales WHERE created_at >= ? AND created_at < ?`
	var rows []struct {
		TotalBase decimal.Decimal `db:"total_base"`
		Quantity  int64           `db:"quantity"`
	}
	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(query), dbTime(from), dbTime(to)); err != nil {
		return repository.SalesAggregate{}, storageErr("aggregate sales", err)
	}
	agg := repository.SalesAggregate{RevenueBase: decimal.Zero}
	for _, row := range rows {
		agg.Count++
		agg.RevenueBase = agg.RevenueBase.Add(row.TotalBase)
		agg.UnitsSold += row.Quantity
	}
	return agg, nil
}
