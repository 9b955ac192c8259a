package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmounts(t *testing.T) {
	tests := []struct {
		name        string
		netAmount   float64
		totalAmount float64
		expectedNet float64
		expectedTax float64
	}{
		{
			name:        "explicit net keeps the caller's split",
			netAmount:   100000,
			totalAmount: 119000,
			expectedNet: 100000,
			expectedTax: 19000,
		},
		{
			name:        "net backed out of a round gross total",
			totalAmount: 119000,
			expectedNet: 100000,
			expectedTax: 19000,
		},
		{
			name:        "derived split rounds the net",
			totalAmount: 10000,
			expectedNet: 8403,
			expectedTax: 1597,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			net, tax := splitAmounts(test.netAmount, test.totalAmount)

			assert.Equal(t, test.expectedNet, net)
			assert.Equal(t, test.expectedTax, tax)
			assert.Equal(t, test.totalAmount, net+tax)
		})
	}
}
