package checkout

import (
	"context"
	"regexp"
	"strings"
	"time"

	"restaurant-bot/models"
)

// GatewayDelay is how long the simulated online payment takes
const GatewayDelay = 2 * time.Second

type Method string

const (
	MethodUPI        Method = "upi"
	MethodCard       Method = "card"
	MethodNetBanking Method = "netbanking"
)

// Banks offered for net banking
var Banks = []string{"SBI", "HDFC", "ICICI", "Axis", "Kotak", "PNB"}

var (
	upiPattern    = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
	cardPattern   = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3}$`)
)

// Payment is the payment step of the order form. Only the fields for the
// chosen method are read.
type Payment struct {
	Type   models.PaymentType
	Method Method

	UPIID      string
	CardNumber string
	CardExpiry string
	CardCVV    string
	Bank       string
}

func CashOnDelivery() Payment {
	return Payment{Type: models.PaymentCashOnDelivery}
}

// Validate checks the shape of the selected method's fields; nothing is verified
func (p Payment) Validate() error {
	switch p.Type {
	case "", models.PaymentCashOnDelivery:
		return nil
	case models.PaymentOnline:
	default:
		return Errors{"Please choose a payment option"}
	}

	var errs Errors
	switch p.Method {
	case MethodUPI:
		if !upiPattern.MatchString(strings.TrimSpace(p.UPIID)) {
			errs = append(errs, "Please enter a valid UPI ID")
		}
	case MethodCard:
		if !cardPattern.MatchString(whitespace.ReplaceAllString(p.CardNumber, "")) {
			errs = append(errs, "Please enter a valid 16-digit card number")
		}
		if !expiryPattern.MatchString(strings.TrimSpace(p.CardExpiry)) {
			errs = append(errs, "Please enter expiry as MM/YY")
		}
		if !cvvPattern.MatchString(strings.TrimSpace(p.CardCVV)) {
			errs = append(errs, "Please enter a valid CVV")
		}
	case MethodNetBanking:
		if !knownBank(p.Bank) {
			errs = append(errs, "Please select your bank")
		}
	default:
		errs = append(errs, "Please choose a payment method")
	}
	return errs.orNil()
}

func knownBank(name string) bool {
	for _, b := range Banks {
		if strings.EqualFold(b, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// Annotation is the free-text payment method recorded on the order
func (p Payment) Annotation() string {
	if p.Type != models.PaymentOnline {
		return ""
	}
	if p.Method == MethodNetBanking {
		return string(p.Method) + ":" + strings.TrimSpace(p.Bank)
	}
	return string(p.Method)
}

// SimulateGateway waits d or until ctx is done
func SimulateGateway(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
