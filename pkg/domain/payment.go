package domain

import "time"

// GatewayName identifies a payment gateway integration.
type GatewayName string

const (
	GatewayQRCode    GatewayName = "qr"
	GatewayStripe    GatewayName = "stripe"
	GatewayRazorpay  GatewayName = "razorpay"
	GatewayPaytm     GatewayName = "paytm"
	GatewayGooglePay GatewayName = "gpay"
)

// PaymentGateway is a payment integration that admins can switch on and off.
// No payment is processed by the service; the settings only drive clients.
type PaymentGateway struct {
	Name        GatewayName       `json:"name"`
	DisplayName string            `json:"displayName"`
	Enabled     bool              `json:"enabled"`
	Config      map[string]string `json:"config"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
