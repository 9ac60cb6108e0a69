package validation

import (
	"errors"
	"fmt"

	"github.com/blnkfinance/blnk-go/model"
)

// Identity checks an identity payload. Individuals require the personal
// fields, organizations require an organization name; the address block and
// category are required for both.
func Identity(data *model.IdentityRequest) error {
	if data == nil {
		return errors.New("identity payload is required")
	}

	switch data.IdentityType {
	case model.IdentityIndividual:
		if blank(data.FirstName) {
			return errors.New("first_name is required for individuals")
		}
		if blank(data.LastName) {
			return errors.New("last_name is required for individuals")
		}
		if data.DOB == nil || data.DOB.IsZero() {
			return errors.New("dob is required for individuals")
		}
		if blank(data.Gender) {
			return errors.New("gender is required for individuals")
		}
		if blank(data.Nationality) {
			return errors.New("nationality is required for individuals")
		}
	case model.IdentityOrganization:
		if blank(data.OrganizationName) {
			return errors.New("organization_name is required for organizations")
		}
	default:
		return fmt.Errorf("identity_type must be %q or %q", model.IdentityIndividual, model.IdentityOrganization)
	}

	if blank(data.Street) {
		return errors.New("street is required")
	}
	if blank(data.City) {
		return errors.New("city is required")
	}
	if blank(data.State) {
		return errors.New("state is required")
	}
	if blank(data.Country) {
		return errors.New("country is required")
	}
	if blank(data.PostCode) {
		return errors.New("post_code is required")
	}
	if blank(data.Category) {
		return errors.New("category is required")
	}
	return nil
}
