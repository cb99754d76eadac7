package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormValues carries the eight user supplied fields. Numeric fields travel
// as strings.
type FormValues struct {
	SenderName      string `json:"senderName"      form:"senderName"`
	SenderAddress   string `json:"senderAddress"   form:"senderAddress"`
	ReceiverName    string `json:"receiverName"    form:"receiverName"`
	ReceiverAddress string `json:"receiverAddress" form:"receiverAddress"`
	PackageWeight   string `json:"packageWeight"   form:"packageWeight"`
	Length          string `json:"length"          form:"length"`
	Width           string `json:"width"           form:"width"`
	Height          string `json:"height"          form:"height"`
}

// UnmarshalJSON accepts the weight and dimensions as JSON strings or numbers.
// A number keeps its literal text, so 10 becomes "10".
func (v *FormValues) UnmarshalJSON(data []byte) error {
	type plain FormValues
	aux := struct {
		*plain
		PackageWeight numericText `json:"packageWeight"`
		Length        numericText `json:"length"`
		Width         numericText `json:"width"`
		Height        numericText `json:"height"`
	}{
		plain: (*plain)(v),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	v.PackageWeight = string(aux.PackageWeight)
	v.Length = string(aux.Length)
	v.Width = string(aux.Width)
	v.Height = string(aux.Height)
	return nil
}

// numericText is a string that may arrive as a JSON number.
type numericText string

func (n *numericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numericText(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*n = numericText(num.String())
	return nil
}
