package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptedDrivers(t *testing.T) {
	assert.Nil(t, ParseAcceptedDrivers(""))
	assert.Nil(t, ParseAcceptedDrivers("not json"))
	assert.Nil(t, ParseAcceptedDrivers("{\"a\":1}"))
	assert.Equal(t, []string{}, ParseAcceptedDrivers("[]"))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ParseAcceptedDrivers(`["a@x.com","b@x.com"]`))
}

func TestAppendAcceptedDriverKeepsOrderAndDedups(t *testing.T) {
	set, added := AppendAcceptedDriver(nil, "a@x.com")
	assert.True(t, added)

	set, added = AppendAcceptedDriver(set, "b@x.com")
	assert.True(t, added)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, set)

	set, added = AppendAcceptedDriver(set, "a@x.com")
	assert.False(t, added)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, set)
}

func TestEncodeAcceptedDrivers(t *testing.T) {
	assert.Equal(t, "[]", EncodeAcceptedDrivers(nil))
	assert.Equal(t, `["a@x.com"]`, EncodeAcceptedDrivers([]string{"a@x.com"}))
}

func TestInvolvesDriver(t *testing.T) {
	trip := Trip{
		DriverEmail:     "joanne@x.com",
		AcceptedDrivers: `["bob@x.com","joanne@x.com"]`,
	}

	assert.True(t, trip.InvolvesDriver("joanne@x.com"))
	assert.True(t, trip.InvolvesDriver("bob@x.com"))

	// a substring of another driver's email must not match
	assert.False(t, trip.InvolvesDriver("ann@x.com"))
	assert.False(t, trip.InvolvesDriver("o@x.com"))
}

func TestInvolvesDriverMalformedSet(t *testing.T) {
	trip := Trip{DriverEmail: "", AcceptedDrivers: "garbage"}
	assert.False(t, trip.InvolvesDriver("a@x.com"))

	trip.DriverEmail = "a@x.com"
	assert.True(t, trip.InvolvesDriver("a@x.com"))
}
