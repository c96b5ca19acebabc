package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository (usable con el handle o con una tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type productRow struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (row productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:          row.ID,
		Name:        row.Name,
		Price:       row.Price,
		Stock:       row.Stock,
		Description: row.Description,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
	}
}

const productColumns = `id, name, price, stock, description, category, created_at`

// Create persiste un nuevo producto y devuelve su id.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, price, stock, description, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.q.GetContext(ctx, &id, r.q.Rebind(query),
		product.Name, product.Price, product.Stock, product.Description, product.Category,
		dbTime(product.CreatedAt),
	)
	if err != nil {
		return 0, storageErr("insert product", err)
	}
	product.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	var row productRow
	if err := r.q.GetContext(ctx, &row, r.q.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product", err)
	}
	return row.toEntity(), nil
}

// List devuelve todos los productos por nombre (sin distinguir mayúsculas).
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY LOWER(name), id`
	var rows []productRow
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageErr("list products", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Update aplica la máscara de campos. Un campo ausente no se toca.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) error {
	if patch.IsEmpty() {
		return domain.InvalidInput("no hay campos para actualizar")
	}
	var (
		sets []string
		args []any
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Stock != nil {
		sets = append(sets, "stock = ?")
		args = append(args, *patch.Stock)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	args = append(args, id)

	query := `UPDATE products SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	res, err := r.q.ExecContext(ctx, r.q.Rebind(query), args...)
	if err != nil {
		return storageErr("update product", err)
	}
	return requireAffected(res, "update product", domain.ErrProductNotFound)
}

// DecrementStock resta qty con una condición de stock suficiente en el propio UPDATE,
// de modo que dos ventas concurrentes no puedan dejar el stock negativo.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) error {
	query := `UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`
	res, err := r.q.ExecContext(ctx, r.q.Rebind(query), qty, id, qty)
	if err != nil {
		return storageErr("decrement stock", err)
	}
	return requireAffected(res, "decrement stock", domain.ErrInsufficientStock)
}

// Delete borra físicamente el producto. Las ventas que lo referencian se conservan.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete product", err)
	}
	return requireAffected(res, "delete product", domain.ErrProductNotFound)
}

// DeleteByNames borra productos cuyo nombre coincide exactamente con alguno de names.
func (r *ProductRepo) DeleteByNames(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`DELETE FROM products WHERE name IN (?)`, names)
	if err != nil {
		return 0, storageErr("delete products by name", err)
	}
	res, err := r.q.ExecContext(ctx, r.q.Rebind(query), args...)
	if err != nil {
		return 0, storageErr("delete products by name", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete products by name", err)
	}
	return n, nil
}

// requireAffected traduce "0 filas afectadas" en notFound.
func requireAffected(res sql.Result, op string, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
