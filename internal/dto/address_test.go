package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCreateRequest_ToAddressRequest(t *testing.T) {
	create := AddressCreateRequest{
		AddressLine: "1 Main St",
		City:        "Taipei",
		State:       "TPE",
		PostalCode:  "100",
		Country:     "TW",
	}

	req := create.ToAddressRequest()

	require.NotNil(t, req)
	assert.Equal(t, &AddressRequest{
		AddressLine: "1 Main St",
		City:        "Taipei",
		State:       "TPE",
		PostalCode:  "100",
		Country:     "TW",
	}, req)
}
