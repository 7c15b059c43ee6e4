package practicum

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		wantErr error
		wantLen int
		wantTS  int64
	}{
		{
			name: "one homework",
			data: map[string]any{
				"homeworks":    []any{map[string]any{"homework_name": "diploma", "status": "approved"}},
				"current_date": json.Number("123"),
			},
			wantLen: 1,
			wantTS:  123,
		},
		{
			name:    "empty list",
			data:    map[string]any{"homeworks": []any{}, "current_date": float64(5)},
			wantLen: 0,
			wantTS:  5,
		},
		{name: "not a map", data: []any{}, wantErr: ErrInvalidShape},
		{name: "nil", data: nil, wantErr: ErrInvalidShape},
		{name: "no homeworks", data: map[string]any{"current_date": json.Number("1")}, wantErr: ErrMissingField},
		{name: "no current_date", data: map[string]any{"homeworks": []any{}}, wantErr: ErrMissingField},
		{
			name:    "homeworks not a list",
			data:    map[string]any{"homeworks": map[string]any{}, "current_date": json.Number("1")},
			wantErr: ErrInvalidShape,
		},
		{
			name:    "current_date not a number",
			data:    map[string]any{"homeworks": []any{}, "current_date": "yesterday"},
			wantErr: ErrInvalidShape,
		},
		{
			name:    "entry not a map",
			data:    map[string]any{"homeworks": []any{"diploma"}, "current_date": json.Number("1")},
			wantErr: ErrInvalidShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := CheckResponse(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.Homeworks) != tt.wantLen {
				t.Errorf("len(homeworks) = %d, want %d", len(resp.Homeworks), tt.wantLen)
			}
			if resp.CurrentDate != tt.wantTS {
				t.Errorf("current_date = %d, want %d", resp.CurrentDate, tt.wantTS)
			}
		})
	}
}

func TestHomeworkFields(t *testing.T) {
	hw := Homework{"homework_name": "diploma", "status": 42}
	if name, ok := hw.Name(); !ok || name != "diploma" {
		t.Errorf("Name() = %q, %t", name, ok)
	}
	if _, ok := hw.Status(); ok {
		t.Error("non-string status must not be reported as present")
	}
}
