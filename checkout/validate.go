// Package checkout runs the client side of ordering and booking: form
// validation, payment selection, the simulated gateway wait and submission.
package checkout

import (
	"regexp"
	"strings"
	"time"

	"restaurant-bot/models"
	"restaurant-bot/reservations"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	whitespace   = regexp.MustCompile(`\s`)
)

// MaxAdvance bounds how far ahead the booking form lets a date be picked
const MaxAdvance = 3 // months

// Errors lists every problem found in a form, in field order
type Errors []string

func (e Errors) Error() string { return strings.Join(e, "; ") }

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}

func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidPhone accepts ten digits once whitespace is removed
func ValidPhone(s string) bool {
	return phonePattern.MatchString(whitespace.ReplaceAllString(s, ""))
}

// Details is the customer part of the order form
type Details struct {
	CustomerName string              `validate:"required"`
	Email        string              `validate:"required,emailshape"`
	Phone        string              `validate:"required,phone10"`
	Address      string              `validate:"required_if=DeliveryType delivery"`
	DeliveryType models.DeliveryType `validate:"required,oneof=delivery pickup"`
}

func (d *Details) trim() {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.DeliveryType = d.DeliveryType.Normalize()
}

var detailMessages = map[string]string{
	"CustomerName.required": "Customer name is required",
	"Email.required":        "Email is required",
	"Email.emailshape":      "Please enter a valid email address",
	"Phone.required":        "Phone number is required",
	"Phone.phone10":         "Please enter a valid 10-digit phone number",
	"Address.required_if":   "Address is required for delivery",
	"DeliveryType.required": "Delivery type is required",
	"DeliveryType.oneof":    "Delivery type must be delivery or pickup",
}

// ValidateDetails trims d in place and reports every failed rule
func ValidateDetails(d *Details) error {
	d.trim()
	return messages(validate.Struct(d), detailMessages).orNil()
}

func messages(err error, table map[string]string) Errors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{err.Error()}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Error())
		}
	}
	return out
}

// ValidateReservation applies the booking form rules before submission
func ValidateReservation(req *reservations.Request, now time.Time) error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Time = strings.TrimSpace(req.Time)
	req.SpecialRequests = strings.TrimSpace(req.SpecialRequests)

	var errs Errors
	if req.CustomerName == "" {
		errs = append(errs, "Customer name is required")
	}
	if req.Email == "" {
		errs = append(errs, "Email is required")
	}
	if req.Phone == "" {
		errs = append(errs, "Phone number is required")
	}
	if req.RestaurantID == "" {
		errs = append(errs, "Please select a restaurant")
	}
	if strings.TrimSpace(req.Date) == "" {
		errs = append(errs, "Date is required")
	}
	if req.Time == "" {
		errs = append(errs, "Time is required")
	}
	if req.Guests < 1 {
		errs = append(errs, "Number of guests is required")
	}
	if req.Email != "" && !ValidEmail(req.Email) {
		errs = append(errs, "Please enter a valid email address")
	}
	if req.Phone != "" && !ValidPhone(req.Phone) {
		errs = append(errs, "Please enter a valid 10-digit phone number")
	}
	if strings.TrimSpace(req.Date) != "" {
		date, err := reservations.ParseDate(req.Date, now.Location())
		switch {
		case err != nil:
			errs = append(errs, "Please enter a valid date")
		case date.Before(reservations.StartOfDay(now)):
			errs = append(errs, "Reservation date must be today or in the future")
		case date.After(reservations.StartOfDay(now).AddDate(0, MaxAdvance, 0)):
			errs = append(errs, "Reservations can be made up to 3 months ahead")
		}
	}
	return errs.orNil()
}
