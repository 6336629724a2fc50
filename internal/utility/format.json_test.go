package utility

import (
	"encoding/json"
	"testing"
)

func TestP2Int64(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int64
	}{
		{"json.Number", json.Number("42"), 42},
		{"json.Number loi", json.Number("abc"), 0},
		{"string", "15", 15},
		{"string loi", "khong-phai-so", 0},
		{"int64", int64(7), 7},
		{"int", 3, 3},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := P2Int64(tt.input); got != tt.want {
				t.Errorf("P2Int64(%v) = %d, muốn %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestP2Float64(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"json.Number", json.Number("1.5"), 1.5},
		{"string", "2.25", 2.25},
		{"string loi", "x", 0},
		{"float64", 3.5, 3.5},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := P2Float64(tt.input); got != tt.want {
				t.Errorf("P2Float64(%v) = %v, muốn %v", tt.input, got, tt.want)
			}
		})
	}
}
