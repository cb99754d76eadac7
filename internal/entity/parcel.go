package entity

type Parcel struct {
	Length       string      `json:"length"`
	Width        string      `json:"width"`
	Height       string      `json:"height"`
	DistanceUnit string      `json:"distance_unit"`
	Weight       string      `json:"weight"`
	MassUnit     string      `json:"mass_unit"`
	Template     string      `json:"template,omitempty"`
	Metadata     string      `json:"metadata,omitempty"`
	Extra        ParcelExtra `json:"extra"`
}

type ParcelExtra struct {
	COD       *CashOnDelivery `json:"COD,omitempty"`
	Insurance *Insurance      `json:"insurance,omitempty"`
}

type CashOnDelivery struct {
	Amount        string `json:"amount"         yaml:"amount"         validate:"required"`
	Currency      string `json:"currency"       yaml:"currency"       validate:"required,len=3"`
	PaymentMethod string `json:"payment_method" yaml:"payment_method" validate:"required,oneof=SECURED_FUNDS CASH ANY"`
}

type Insurance struct {
	Amount   string `json:"amount"   yaml:"amount"   validate:"required"`
	Content  string `json:"content"  yaml:"content"`
	Currency string `json:"currency" yaml:"currency" validate:"required,len=3"`
	Provider string `json:"provider" yaml:"provider"`
}

// ParcelTemplate holds the parcel fields that are not supplied by the caller.
type ParcelTemplate struct {
	MassUnit     string         `yaml:"mass_unit"     validate:"required,oneof=g oz lb kg"`
	DistanceUnit string         `yaml:"distance_unit" validate:"required,oneof=cm in ft mm m yd"`
	Template     string         `yaml:"template"`
	Metadata     string         `yaml:"metadata"      validate:"max=100"`
	COD          CashOnDelivery `yaml:"cod"`
	Insurance    Insurance      `yaml:"insurance"`
}

// Apply builds a parcel from the caller's weight and dimensions. The extra
// sub-records are copied so parcels never share them.
func (t ParcelTemplate) Apply(weight, length, width, height string) Parcel {
	cod := t.COD
	insurance := t.Insurance

	return Parcel{
		Length:       length,
		Width:        width,
		Height:       height,
		DistanceUnit: t.DistanceUnit,
		Weight:       weight,
		MassUnit:     t.MassUnit,
		Template:     t.Template,
		Metadata:     t.Metadata,
		Extra: ParcelExtra{
			COD:       &cod,
			Insurance: &insurance,
		},
	}
}

func DefaultParcelTemplate() ParcelTemplate {
	return ParcelTemplate{
		MassUnit:     "kg",
		DistanceUnit: "cm",
		Template:     "USPS_FlatRateGiftCardEnvelope",
		Metadata:     "Customer ID 123456",
		COD: CashOnDelivery{
			Amount:        "5.5",
			Currency:      "USD",
			PaymentMethod: "CASH",
		},
		Insurance: Insurance{
			Amount:   "5.5",
			Content:  "Laptop",
			Currency: "USD",
			Provider: "UPS",
		},
	}
}
