package model

import "time"

// Customer mirrors the platform API's customer resource. Residence is
// optional and only ever travels embedded in its customer.
type Customer struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Nickname     string     `json:"nickname"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	Relationship string     `json:"relationship"`
	Residence    *Residence `json:"residence,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Residence struct {
	ResidenceID   string    `json:"residenceId"`
	CustomerID    string    `json:"customerId"`
	ZipCode       string    `json:"zipCode"`
	StreetAddress string    `json:"streetAddress"`
	AddressLine2  string    `json:"addressLine2"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CustomerRegistrationRequest struct {
	FirstName    string                        `json:"firstName,omitempty" mapstructure:"firstName"`
	LastName     string                        `json:"lastName,omitempty" mapstructure:"lastName"`
	Nickname     string                        `json:"nickname,omitempty" mapstructure:"nickname"`
	Email        string                        `json:"email,omitempty" mapstructure:"email"`
	PhoneNumber  string                        `json:"phoneNumber,omitempty" mapstructure:"phoneNumber"`
	Relationship string                        `json:"relationship,omitempty" mapstructure:"relationship"`
	Residence    *ResidenceRegistrationRequest `json:"residence,omitempty" mapstructure:"residence"`
}

type CustomerUpdateRequest struct {
	CustomerID   string `json:"customerId,omitempty" mapstructure:"customerId"`
	FirstName    string `json:"firstName,omitempty" mapstructure:"firstName"`
	LastName     string `json:"lastName,omitempty" mapstructure:"lastName"`
	Nickname     string `json:"nickname,omitempty" mapstructure:"nickname"`
	Email        string `json:"email,omitempty" mapstructure:"email"`
	PhoneNumber  string `json:"phoneNumber,omitempty" mapstructure:"phoneNumber"`
	Relationship string `json:"relationship,omitempty" mapstructure:"relationship"`
}

type ResidenceRegistrationRequest struct {
	ZipCode       string `json:"zipCode,omitempty" mapstructure:"zipCode"`
	StreetAddress string `json:"streetAddress,omitempty" mapstructure:"streetAddress"`
	AddressLine2  string `json:"addressLine2,omitempty" mapstructure:"addressLine2"`
	City          string `json:"city,omitempty" mapstructure:"city"`
	Country       string `json:"country,omitempty" mapstructure:"country"`
}

// HasRequiredName reports whether the registration passes the
// name-or-nickname presence check applied before any network call.
func (r CustomerRegistrationRequest) HasRequiredName() bool {
	return r.FirstName != "" || r.Nickname != ""
}

func (r CustomerUpdateRequest) HasRequiredName() bool {
	return r.FirstName != "" || r.Nickname != ""
}
