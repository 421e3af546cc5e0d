package validations

import (
	"fmt"
	"strings"

	"resort-backend/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators adds the resort tags to gin's validator.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("roomstatus", validRoomStatus); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmethod", validPaymentMethod)
}

func validRoomStatus(fl validator.FieldLevel) bool {
	return models.RoomStatus(fl.Field().String()).Valid()
}

func validPaymentMethod(fl validator.FieldLevel) bool {
	m := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	for _, pm := range models.PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Describe flattens validator errors into one operator-readable line.
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "roomstatus":
			parts = append(parts, fmt.Sprintf("%s must be one of free, occupied, maintenance, housekeeping", fe.Field()))
		case "paymentmethod":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(models.PaymentMethods, ", ")))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s%s", fe.Field(), fe.Tag(), paramSuffix(fe.Param())))
		}
	}
	return strings.Join(parts, "; ")
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
