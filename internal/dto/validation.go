package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// RegisterValidations installs the custom binding validators used by the request
// DTOs. Call once at startup before serving requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("itemtype", func(fl validator.FieldLevel) bool {
		return domain.ValidItemType(domain.ItemType(fl.Field().String()))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.ValidPaymentMethod(domain.PaymentMethod(fl.Field().String()))
	})
}
