package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/validation"
	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/money"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
	"github.com/jhoicas/kiosquito/pkg/logger"
)

// SalesUseCase libro de ventas: registro atómico, listado y resúmenes.
type SalesUseCase struct {
	tx    repository.TxRunner
	sales repository.SaleRepository
	loc   *time.Location
	now   func() time.Time
	log   *logger.Logger
}

// NewSalesUseCase construye el caso de uso. loc es el calendario de las ventanas
// día/semana/mes y de los filtros por fecha.
func NewSalesUseCase(tx repository.TxRunner, sales repository.SaleRepository, loc *time.Location, now func() time.Time, log *logger.Logger) *SalesUseCase {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SalesUseCase{tx: tx, sales: sales, loc: loc, now: now, log: log.Component("sales")}
}

// RecordSale registra una venta: en una sola transacción comprueba producto, moneda y stock,
// descuenta el stock y crea la venta. Cualquier fallo deja ambos sin cambios.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (int64, error) {
	if err := validation.Struct(in); err != nil {
		return 0, err
	}

	var saleID int64
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, currencies repository.CurrencyRepository, sales repository.SaleRepository) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		currency, err := currencies.GetByID(ctx, in.CurrencyID)
		if err != nil {
			return err
		}
		if currency == nil {
			return domain.ErrCurrencyNotFound
		}
		if product.Stock < in.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, product.Stock, in.Quantity)
		}
		if err := products.DecrementStock(ctx, product.ID, in.Quantity); err != nil {
			return err
		}

		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		sale := &entity.Sale{
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			CurrencyID: currency.ID,
			TotalBase:  money.LineTotal(unitPrice, in.Quantity),
			CreatedAt:  uc.now(),
		}
		id, err := sales.Create(ctx, sale)
		if err != nil {
			return err
		}
		saleID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNotFound) {
			uc.log.Debug().Err(err).Int64("product_id", in.ProductID).Int("quantity", in.Quantity).Msg("venta rechazada")
		}
		return 0, err
	}
	return saleID, nil
}

// ListSales ventas de más reciente a más antigua. Los extremos del filtro son fechas de
// calendario inclusivas en la zona configurada.
func (uc *SalesUseCase) ListSales(ctx context.Context, filter entity.SalesFilter) ([]dto.SaleResponse, error) {
	from, to := uc.window(filter)
	if from != nil && to != nil && !from.Before(*to) {
		return nil, domain.InvalidInput("la fecha inicial es posterior a la final")
	}
	sales, err := uc.sales.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// ParseSalesQuery convierte el filtro textual (YYYY-MM-DD) en fechas de la zona configurada.
func (uc *SalesUseCase) ParseSalesQuery(q dto.SalesQuery) (entity.SalesFilter, error) {
	if err := validation.Struct(q); err != nil {
		return entity.SalesFilter{}, err
	}
	var f entity.SalesFilter
	if q.From != "" {
		t, err := time.ParseInLocation(time.DateOnly, q.From, uc.loc)
		if err != nil {
			return f, domain.InvalidInput("from: %v", err)
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := time.ParseInLocation(time.DateOnly, q.To, uc.loc)
		if err != nil {
			return f, domain.InvalidInput("to: %v", err)
		}
		f.To = &t
	}
	return f, nil
}

// window traduce el filtro de fechas a [inicio del día From, inicio del día siguiente a To).
func (uc *SalesUseCase) window(filter entity.SalesFilter) (from, to *time.Time) {
	if filter.From != nil {
		t := entity.StartOfDay(*filter.From, uc.loc)
		from = &t
	}
	if filter.To != nil {
		t := entity.StartOfDay(*filter.To, uc.loc).AddDate(0, 0, 1)
		to = &t
	}
	return from, to
}

// Summarize agrega las ventas del periodo (day, week o month) contado desde hoy.
func (uc *SalesUseCase) Summarize(ctx context.Context, period string) (*dto.SalesSummaryResponse, error) {
	summary, err := uc.summary(ctx, period)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		Period:           string(summary.Period),
		From:             summary.From,
		To:               summary.To,
		SalesCount:       summary.Count,
		TotalRevenueBase: summary.TotalRevenueBase,
		TotalUnitsSold:   summary.TotalUnitsSold,
	}, nil
}

func (uc *SalesUseCase) summary(ctx context.Context, period string) (*entity.SalesSummary, error) {
	p, ok := entity.ParsePeriod(period)
	if !ok {
		return nil, domain.InvalidInput("periodo desconocido %q (day, week, month)", period)
	}
	from, to, _ := p.Window(uc.now(), uc.loc)
	agg, err := uc.sales.Aggregate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &entity.SalesSummary{
		Period:           p,
		From:             from,
		To:               to,
		Count:            agg.Count,
		TotalRevenueBase: agg.RevenueBase,
		TotalUnitsSold:   agg.UnitsSold,
	}, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		CurrencyID:   s.CurrencyID,
		CurrencyCode: s.CurrencyCode,
		TotalBase:    s.TotalBase,
		CreatedAt:    s.CreatedAt,
	}
	if s.CurrencyRate != nil {
		total := money.FromBase(s.TotalBase, *s.CurrencyRate)
		resp.TotalInCurrency = &total
	}
	return resp
}
