package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// amountBounds rejects request amounts outside the domain amount range at
// bind time, before the payload reaches a service.
func amountBounds(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	_, err := domain.NewAmount(value)
	return err == nil
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("amountbounds", amountBounds)
	}
}
