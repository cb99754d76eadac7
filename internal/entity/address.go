package entity

// Address is the address record sent to the shipping provider.
type Address struct {
	Name          string `json:"name"`
	Company       string `json:"company,omitempty"`
	Street1       string `json:"street1"`
	Street3       string `json:"street3"`
	StreetNo      string `json:"street_no"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsResidential bool   `json:"is_residential"`
	Metadata      string `json:"metadata"`
	Validate      bool   `json:"validate"`
}

// AddressTemplate holds the configured fields of an address. Name and Street1
// act as fallbacks when the caller leaves them empty.
type AddressTemplate struct {
	Name          string `yaml:"name"`
	Company       string `yaml:"company"`
	Street1       string `yaml:"street1"`
	Street3       string `yaml:"street3"`
	StreetNo      string `yaml:"street_no"`
	City          string `yaml:"city"           validate:"required,max=100"`
	State         string `yaml:"state"          validate:"required,max=50"`
	Zip           string `yaml:"zip"            validate:"required,max=20"`
	Country       string `yaml:"country"        validate:"required,len=2"`
	Phone         string `yaml:"phone"          validate:"max=30"`
	Email         string `yaml:"email"          validate:"omitempty,email"`
	IsResidential bool   `yaml:"is_residential"`
	Metadata      string `yaml:"metadata"       validate:"max=100"`
	Validate      bool   `yaml:"validate"`
}

func (t AddressTemplate) Apply(name, street1 string) Address {
	addr := Address{
		Name:          t.Name,
		Company:       t.Company,
		Street1:       t.Street1,
		Street3:       t.Street3,
		StreetNo:      t.StreetNo,
		City:          t.City,
		State:         t.State,
		Zip:           t.Zip,
		Country:       t.Country,
		Phone:         t.Phone,
		Email:         t.Email,
		IsResidential: t.IsResidential,
		Metadata:      t.Metadata,
		Validate:      t.Validate,
	}
	if name != "" {
		addr.Name = name
	}
	if street1 != "" {
		addr.Street1 = street1
	}
	return addr
}

// DefaultOriginTemplate returns the sender side defaults.
func DefaultOriginTemplate() AddressTemplate {
	return AddressTemplate{
		Company:       "Shippo",
		City:          "San Francisco",
		State:         "CA",
		Zip:           "94117",
		Country:       "US",
		Phone:         "+1 555 341 9393",
		Email:         "shippotle@shippo.com",
		IsResidential: true,
		Metadata:      "Customer ID 123456",
		Validate:      true,
	}
}

// DefaultDestinationTemplate returns the receiver side defaults.
func DefaultDestinationTemplate() AddressTemplate {
	return AddressTemplate{
		City:          "San Francisco",
		State:         "CA",
		Zip:           "94117",
		Country:       "US",
		Phone:         "5555555555",
		Email:         "receiver@example.com",
		IsResidential: true,
		Metadata:      "Customer ID 12345678",
		Validate:      true,
	}
}
