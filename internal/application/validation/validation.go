// Package validation valida los DTOs de entrada con go-playground/validator y traduce
// el primer fallo a un error de dominio ErrInvalidInput.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator devuelve la instancia compartida (segura para uso concurrente).
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los importes se validan como float64 para poder usar gt/gte/lt.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return signedFloat(d)
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			}
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// signedFloat convierte d a float64 conservando el signo: un importe demasiado pequeño
// para float64 no se redondea a 0, así gt=0 y gte=0 deciden igual que d.Sign().
func signedFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	if f == 0 && !d.IsZero() {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(d.Sign()))
	}
	return f
}

// Struct valida s y devuelve nil o un error que envuelve domain.ErrInvalidInput.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.InvalidInput("%s %s", fe.Field(), describe(fe))
	}
	return domain.InvalidInput("%v", err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "admite como máximo " + fe.Param() + " caracteres"
	case "alphanum":
		return "solo admite letras y números"
	case "datetime":
		return "debe tener el formato " + fe.Param()
	}
	return "no es válido (" + fe.Tag() + ")"
}
