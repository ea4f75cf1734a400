package v1specs

import (
	"estate/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// EncodePaymentGateway writes a gateway with its settings.
func EncodePaymentGateway(e *jx.Encoder, g domain.PaymentGateway) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(string(g.Name)) })
		e.Field("displayName", func(e *jx.Encoder) { e.Str(g.DisplayName) })
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(g.Enabled) })
		e.Field("config", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for k, v := range g.Config {
					e.Field(k, func(e *jx.Encoder) { e.Str(v) })
				}
			})
		})
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, g.UpdatedAt) })
	})
}

// EncodePaymentGateways writes a JSON array of gateways.
func EncodePaymentGateways(e *jx.Encoder, gateways []domain.PaymentGateway) {
	e.Arr(func(e *jx.Encoder) {
		for _, g := range gateways {
			EncodePaymentGateway(e, g)
		}
	})
}

// DecodePaymentGatewayUpdate reads the body of PUT
// /admin/payment-gateways/{name}. "enabled" is required.
func DecodePaymentGatewayUpdate(data []byte, name domain.GatewayName) (domain.PaymentGateway, error) {
	g := domain.PaymentGateway{Name: name}
	var hasEnabled bool
	err := DecodeObject(data, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "enabled":
			g.Enabled, err = d.Bool()
			hasEnabled = true
		case "config":
			g.Config, err = decodeStringMap(d)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return field(key, err)
	})
	if err != nil {
		return domain.PaymentGateway{}, errors.Wrap(err, "decode payment gateway")
	}
	if !hasEnabled {
		return domain.PaymentGateway{}, errors.New("decode payment gateway: enabled is required")
	}

	return g, nil
}
