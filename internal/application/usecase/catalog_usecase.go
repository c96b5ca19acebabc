package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/validation"
	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo: productos y monedas.
type CatalogUseCase struct {
	products   repository.ProductRepository
	currencies repository.CurrencyRepository
	now        func() time.Time
}

// NewCatalogUseCase construye el caso de uso. now nil usa time.Now.
func NewCatalogUseCase(products repository.ProductRepository, currencies repository.CurrencyRepository, now func() time.Time) *CatalogUseCase {
	if now == nil {
		now = time.Now
	}
	return &CatalogUseCase{products: products, currencies: currencies, now: now}
}

// ListProducts devuelve todos los productos ordenados por nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct obtiene un producto o ErrProductNotFound.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// CreateProduct valida y crea un producto; created_at lo asigna el reloj del núcleo.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}
	return uc.products.Create(ctx, &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Stock:       in.Stock,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   uc.now(),
	})
}

// UpdateProduct aplica una actualización parcial y devuelve el producto resultante.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	patch := entity.ProductPatch{
		Name:        trimmed(in.Name),
		Price:       in.Price,
		Stock:       in.Stock,
		Description: trimmed(in.Description),
		Category:    trimmed(in.Category),
	}
	if patch.IsEmpty() {
		return nil, domain.InvalidInput("no hay campos para actualizar")
	}
	if err := uc.products.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return uc.GetProduct(ctx, id)
}

// DeleteProduct borra un producto. Sus ventas se conservan.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.products.Delete(ctx, id)
}

// ListCurrencies monedas activas (selector de caja).
func (uc *CatalogUseCase) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	currencies, err := uc.currencies.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponses(currencies), nil
}

// ListAllCurrencies todas las monedas, la base primero (pantalla de administración).
func (uc *CatalogUseCase) ListAllCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	currencies, err := uc.currencies.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponses(currencies), nil
}

// GetCurrency obtiene una moneda o ErrCurrencyNotFound.
func (uc *CatalogUseCase) GetCurrency(ctx context.Context, id int64) (*dto.CurrencyResponse, error) {
	c, err := uc.currencies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCurrencyNotFound
	}
	resp := toCurrencyResponse(c)
	return &resp, nil
}

// CreateCurrency crea una moneda. La moneda base no se puede crear de nuevo.
func (uc *CatalogUseCase) CreateCurrency(ctx context.Context, in dto.CreateCurrencyRequest) (int64, error) {
	in.Code = normalizeCode(in.Code)
	if err := validation.Struct(in); err != nil {
		return 0, err
	}
	if in.Code == entity.BaseCurrencyCode {
		return 0, domain.ErrBaseCurrencyProtected
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return uc.currencies.Create(ctx, &entity.Currency{
		Code:         in.Code,
		Name:         strings.TrimSpace(in.Name),
		ExchangeRate: in.ExchangeRate,
		Active:       active,
	})
}

// UpdateCurrency actualización parcial. La moneda base conserva código, tasa 1 y estado activo;
// ninguna otra moneda puede tomar su código.
func (uc *CatalogUseCase) UpdateCurrency(ctx context.Context, id int64, in dto.UpdateCurrencyRequest) (*dto.CurrencyResponse, error) {
	if in.Code != nil {
		code := normalizeCode(*in.Code)
		in.Code = &code
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	patch := entity.CurrencyPatch{
		Code:         in.Code,
		Name:         trimmed(in.Name),
		ExchangeRate: in.ExchangeRate,
		Active:       in.Active,
	}
	if patch.IsEmpty() {
		return nil, domain.InvalidInput("no hay campos para actualizar")
	}

	current, err := uc.currencies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrCurrencyNotFound
	}
	if err := checkBaseCurrencyPatch(current, patch); err != nil {
		return nil, err
	}

	if err := uc.currencies.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return uc.GetCurrency(ctx, id)
}

// DeleteCurrency borra una moneda que no sea la base. Sus ventas se conservan.
func (uc *CatalogUseCase) DeleteCurrency(ctx context.Context, id int64) error {
	current, err := uc.currencies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrCurrencyNotFound
	}
	if current.IsBase() {
		return domain.ErrBaseCurrencyProtected
	}
	return uc.currencies.Delete(ctx, id)
}

func checkBaseCurrencyPatch(current *entity.Currency, patch entity.CurrencyPatch) error {
	if !current.IsBase() {
		if patch.Code != nil && *patch.Code == entity.BaseCurrencyCode {
			return domain.ErrBaseCurrencyProtected
		}
		return nil
	}
	switch {
	case patch.Code != nil && *patch.Code != entity.BaseCurrencyCode:
		return domain.ErrBaseCurrencyProtected
	case patch.Active != nil && !*patch.Active:
		return domain.ErrBaseCurrencyProtected
	case patch.ExchangeRate != nil && !patch.ExchangeRate.Equal(decimal.NewFromInt(1)):
		return domain.ErrBaseCurrencyProtected
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func toCurrencyResponse(c *entity.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		ExchangeRate: c.ExchangeRate,
		Active:       c.Active,
		IsBase:       c.IsBase(),
	}
}

func toCurrencyResponses(list []*entity.Currency) []dto.CurrencyResponse {
	out := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCurrencyResponse(c))
	}
	return out
}
