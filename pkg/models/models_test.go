package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{"DEPOSIT", DEPOSIT, false},
		{"WITHDRAWAL", WITHDRAWAL, false},
		{"TRANSFER_IN", TRANSFER_IN, false},
		{"TRANSFER_OUT", TRANSFER_OUT, false},
		{"deposit", "", true},
		{"PAYMENT", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
