package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBid_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Bid
		wantErr bool
	}{
		{"json number", `450`, 450, false},
		{"json string", `"450"`, 450, false},
		{"padded string", `" 450 "`, 450, false},
		{"zero", `0`, 0, false},
		{"non-numeric string", `"abc"`, 0, true},
		{"float", `450.5`, 0, true},
		{"boolean", `true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bid
			err := json.Unmarshal([]byte(tt.payload), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestApplyRequest_DecodeCoercesStringBid(t *testing.T) {
	var req ApplyRequest
	err := json.Unmarshal([]byte(`{"bid":"1200","proposal":"I can start Monday","contractorName":"Aisha Khan"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, Bid(1200), req.Bid)
	assert.Equal(t, "Aisha Khan", req.ContractorName)
}

func TestApplyRequest_Validate(t *testing.T) {
	valid := ApplyRequest{Bid: 500, Proposal: "Done plenty of these.", ContractorName: "Danish Mir"}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.ContractorName = " "
	require.Error(t, missing.Validate())

	negative := valid
	negative.Bid = -5
	require.Error(t, negative.Validate())
}
