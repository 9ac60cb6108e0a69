package blnk

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blnkfinance/blnk-go/model"
)

func validIndividual() *model.IdentityRequest {
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.IdentityRequest{
		IdentityType: model.IdentityIndividual,
		FirstName:    "Ada",
		LastName:     "Eze",
		Gender:       "female",
		DOB:          &dob,
		Nationality:  "NG",
		Category:     "customer",
		Street:       "12 Broad St",
		City:         "Lagos",
		State:        "LA",
		Country:      "NG",
		PostCode:     "100001",
	}
}

func TestIdentitiesCreate(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated,
		`{"identity_id":"id1","identity_type":"individual","first_name":"Ada"}`)}
	c := newTestClient(doer)

	resp := c.Identities().Create(context.Background(), validIndividual())

	assert.Equal(t, "http://blnk.test/identities", doer.lastReq.URL.String())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "id1", resp.Data.IdentityID)
}

func TestIdentitiesCreateMissingDOB(t *testing.T) {
	doer := &fakeDoer{}
	c := newTestClient(doer)

	data := validIndividual()
	data.DOB = nil
	resp := c.Identities().Create(context.Background(), data)

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "dob")
	assert.Zero(t, doer.calls)
}

func TestIdentitiesOrganization(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusCreated, `{"identity_id":"id2"}`)}
	c := newTestClient(doer)

	resp := c.Identities().Create(context.Background(), &model.IdentityRequest{
		IdentityType:     model.IdentityOrganization,
		OrganizationName: "Acme Ltd",
		Category:         "vendor",
		Street:           "1 Main St",
		City:             "Austin",
		State:            "TX",
		Country:          "US",
		PostCode:         "73301",
	})

	require.NotNil(t, resp.Data)
	assert.Equal(t, "id2", resp.Data.IdentityID)
}

func TestIdentitiesUpdateAndList(t *testing.T) {
	doer := &fakeDoer{handler: respondWith(http.StatusOK, `[{"identity_id":"id1"}]`)}
	c := newTestClient(doer)

	resp := c.Identities().List(context.Background())
	assert.Equal(t, http.MethodGet, doer.lastReq.Method)
	require.NotNil(t, resp.Data)
	require.Len(t, *resp.Data, 1)

	doer.handler = respondWith(http.StatusOK, `{"identity_id":"id1"}`)
	updated := c.Identities().Update(context.Background(), "id1", validIndividual())
	assert.Equal(t, http.MethodPut, doer.lastReq.Method)
	assert.Equal(t, "http://blnk.test/identities/id1", doer.lastReq.URL.String())
	require.NotNil(t, updated.Data)
}
