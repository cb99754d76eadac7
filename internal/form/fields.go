package form

import "github.com/Sibghat34/shippo-api/internal/entity"

// Values is the client side mirror of the user supplied fields.
type Values = entity.FormValues

type Field string

const (
	SenderName      Field = "senderName"
	SenderAddress   Field = "senderAddress"
	ReceiverName    Field = "receiverName"
	ReceiverAddress Field = "receiverAddress"
	PackageWeight   Field = "packageWeight"
	Length          Field = "length"
	Width           Field = "width"
	Height          Field = "height"
)

// Fields lists the form fields in display order.
var Fields = []Field{
	SenderName,
	SenderAddress,
	ReceiverName,
	ReceiverAddress,
	PackageWeight,
	Length,
	Width,
	Height,
}

type fieldSpec struct {
	label       string
	placeholder string
	rules       string
	messages    map[string]string
}

var specs = map[Field]fieldSpec{
	SenderName: {
		label:       "Sender Name",
		placeholder: "Enter sender name here",
		rules:       "utf16_min=2,required",
		messages: map[string]string{
			"utf16_min": "Sender name must be at least 2 characters.",
			"required":  "Sender name is required",
		},
	},
	SenderAddress: {
		label:       "Sender Address",
		placeholder: "Enter sender address here",
		rules:       "utf16_min=2,required",
		messages: map[string]string{
			"utf16_min": "Sender address must be at least 2 characters.",
			"required":  "Sender address is required",
		},
	},
	ReceiverName: {
		label:       "Receiver Name",
		placeholder: "Enter receiver name here",
		rules:       "utf16_min=2,required",
		messages: map[string]string{
			"utf16_min": "Receiver name must be at least 2 characters.",
			"required":  "Receiver name is required",
		},
	},
	ReceiverAddress: {
		label:       "Receiver Address",
		placeholder: "Enter receiver address here",
		rules:       "utf16_min=2,required",
		messages: map[string]string{
			"utf16_min": "Receiver address must be at least 2 characters.",
			"required":  "Receiver address is required",
		},
	},
	PackageWeight: {
		label:       "Package Weight (kg)",
		placeholder: "Enter package weight",
		rules:       "required",
		messages: map[string]string{
			"required": "Package weight is required.",
		},
	},
	Length: {
		label:       "Package Length (cm)",
		placeholder: "Enter package length",
		rules:       "required,positive_number",
		messages: map[string]string{
			"required":        "Length is required.",
			"positive_number": "Length must be greater than zero.",
		},
	},
	Width: {
		label:       "Package Width (cm)",
		placeholder: "Enter package width",
		rules:       "required,positive_number",
		messages: map[string]string{
			"required":        "Width is required.",
			"positive_number": "Width must be greater than zero.",
		},
	},
	Height: {
		label:       "Package Height (cm)",
		placeholder: "Enter package height",
		rules:       "required,positive_number",
		messages: map[string]string{
			"required":        "Height is required.",
			"positive_number": "Height must be greater than zero.",
		},
	},
}

func (f Field) Label() string {
	return specs[f].label
}

func (f Field) Placeholder() string {
	return specs[f].placeholder
}

// Value returns the value of field f held by v.
func Value(v Values, f Field) string {
	switch f {
	case SenderName:
		return v.SenderName
	case SenderAddress:
		return v.SenderAddress
	case ReceiverName:
		return v.ReceiverName
	case ReceiverAddress:
		return v.ReceiverAddress
	case PackageWeight:
		return v.PackageWeight
	case Length:
		return v.Length
	case Width:
		return v.Width
	case Height:
		return v.Height
	default:
		return ""
	}
}

// SetValue stores value into field f of v. Unknown fields are ignored.
func SetValue(v *Values, f Field, value string) {
	switch f {
	case SenderName:
		v.SenderName = value
	case SenderAddress:
		v.SenderAddress = value
	case ReceiverName:
		v.ReceiverName = value
	case ReceiverAddress:
		v.ReceiverAddress = value
	case PackageWeight:
		v.PackageWeight = value
	case Length:
		v.Length = value
	case Width:
		v.Width = value
	case Height:
		v.Height = value
	}
}
