package checkout

import (
	"strings"

	"merma/models"
)

// validateShipping mirrors the shipping step of the checkout form: every
// field except the reference is required.
func validateShipping(s models.ShippingInfo) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(s.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(s.District) == "" {
		errs["district"] = "District is required"
	}

	return errs
}

// validatePayment checks the fields that apply to the chosen method: the
// card block for "card", the phone number for the wallet methods. A bank
// transfer needs no extra fields; the transfer details are shown to the
// user, not collected from them.
func validatePayment(p models.PaymentInfo) map[string]string {
	errs := map[string]string{}

	switch p.Method {
	case "bank":
	case "card":
		if p.CardNumber == "" {
			errs["cardNumber"] = "Card number is required"
		}
		if p.CardName == "" {
			errs["cardName"] = "Cardholder name is required"
		}
		if p.CardExpiry == "" {
			errs["cardExpiry"] = "Expiry date is required"
		}
		if p.CardCvv == "" {
			errs["cardCvv"] = "CVV is required"
		}
	case "yape", "plin":
		if p.PhoneNumber == "" {
			errs["phoneNumber"] = "Phone number is required"
		}
	default:
		errs["method"] = "Unknown payment method"
	}

	return errs
}
