package demo

import (
	"time"

	"github.com/google/uuid"
)

// Raw records carry json and xml tags; YAML, TOML, form, CBOR and
// MessagePack bodies are decoded by their json names.

type RawAddress struct {
	Street  string `json:"street" xml:"street"`
	City    string `json:"city" xml:"city"`
	Zip     string `json:"zip" xml:"zip"`
	Country string `json:"country" xml:"country"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type RawProfile struct {
	Name     string `json:"name" xml:"name"`
	Birthday string `json:"birthday" xml:"birthday"`
	Website  string `json:"website" xml:"website"`
	Color    string `json:"color" xml:"color"`
}

type Profile struct {
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday"`
	Website  string    `json:"website,omitempty"`
	Color    string    `json:"color,omitempty"`
}

type RawSignup struct {
	ID          string       `json:"id" xml:"id"`
	Username    string       `json:"username" xml:"username"`
	Email       string       `json:"email" xml:"email"`
	Password    string       `json:"password" xml:"password"`
	Confirm     string       `json:"password_confirmation" xml:"password_confirmation"`
	Profile     RawProfile   `json:"profile" xml:"profile"`
	Addresses   []RawAddress `json:"addresses" xml:"addresses>address"`
	Tags        []string     `json:"tags" xml:"tags>tag"`
	AcceptTerms bool         `json:"accept_terms" xml:"accept_terms"`
}

// Signup is a validated registration. Passwords never leave the process
// in JSON.
type Signup struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-" valid:"password"`
	Confirm     string    `json:"-" valid:"password_confirmation"`
	Profile     Profile   `json:"profile"`
	Addresses   []Address `json:"addresses"`
	Tags        []string  `json:"tags"`
	AcceptTerms bool      `json:"accept_terms"`
}
