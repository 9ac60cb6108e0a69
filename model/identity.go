package model

import "time"

// IdentityType distinguishes the two identity shapes the API accepts.
type IdentityType string

const (
	IdentityIndividual   IdentityType = "individual"
	IdentityOrganization IdentityType = "organization"
)

// IdentityRequest is the body for creating or updating an identity.
// Individuals require the personal fields, organizations require
// OrganizationName; the address fields and Category apply to both.
type IdentityRequest struct {
	IdentityType     IdentityType `json:"identity_type"`
	FirstName        string       `json:"first_name,omitempty"`
	LastName         string       `json:"last_name,omitempty"`
	OtherNames       string       `json:"other_names,omitempty"`
	Gender           string       `json:"gender,omitempty"`
	DOB              *time.Time   `json:"dob,omitempty"`
	Nationality      string       `json:"nationality,omitempty"`
	OrganizationName string       `json:"organization_name,omitempty"`
	EmailAddress     string       `json:"email_address,omitempty"`
	PhoneNumber      string       `json:"phone_number,omitempty"`
	Category         string       `json:"category"`
	Street           string       `json:"street"`
	City             string       `json:"city"`
	State            string       `json:"state"`
	Country          string       `json:"country"`
	PostCode         string       `json:"post_code"`
	MetaData         Metadata     `json:"meta_data,omitempty"`
}

// Identity is an identity record as returned by the server.
type Identity struct {
	IdentityRequest

	IdentityID string    `json:"identity_id"`
	CreatedAt  time.Time `json:"created_at"`
}
