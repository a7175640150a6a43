package sqlscribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T){
	testCases:=[]struct{
		name string
		input string
		want bool
	}{
		{
			name: "plain",
			input: "user_id",
			want: true,
		},
		{
			name: "underscore prefix",
			input: "_hidden",
			want: true,
		},
		{
			name: "qualified",
			input: "orders.total",
			want: true,
		},
		{
			name: "fully qualified",
			input: "schema.table.column",
			want: true,
		},
		{
			name: "aggregate count",
			input: "COUNT(id)",
			want: true,
		},
		{
			name: "aggregate sum",
			input: "SUM(amount)",
			want: true,
		},
		{
			name: "aggregate qualified arg",
			input: "AVG(orders.total)",
			want: true,
		},
		{
			name: "leading digit",
			input: "123abc",
			want: false,
		},
		{
			name: "empty",
			input: "",
			want: false,
		},
		{
			name: "trailing dot",
			input: "orders.",
			want: false,
		},
		{
			name: "digit after dot",
			input: "orders.1total",
			want: false,
		},
		{
			name: "space inside",
			input: "user id",
			want: false,
		},
		{
			name: "unknown function",
			input: "LOWER(name)",
			want: false,
		},
		{
			name: "aggregate without arg",
			input: "COUNT()",
			want: false,
		},
		{
			name: "aggregate unclosed",
			input: "SUM(amount",
			want: false,
		},
	}
	for _,tc:=range testCases{
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want,isValidIdentifier(tc.input))
		})
	}
}
