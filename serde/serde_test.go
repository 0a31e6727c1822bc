package serde

import (
	"strings"
	"testing"
)

type note struct {
	Title string  `json:"title"`
	Body  *string `json:"body"`
	Tags  []any   `json:"tags,omitempty"`
}

func TestSerialize_NullHandling(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
		value    any
		want     string
	}{
		{
			name:     "nil settings includes nulls",
			settings: nil,
			value:    note{Title: "hello"},
			want:     `{"title":"hello","body":null}`,
		},
		{
			name:     "include keeps nulls",
			settings: &Settings{NullValueHandling: Include},
			value:    note{Title: "hello"},
			want:     `{"title":"hello","body":null}`,
		},
		{
			name:     "ignore drops nulls",
			settings: &Settings{NullValueHandling: Ignore},
			value:    note{Title: "hello"},
			want:     `{"title":"hello"}`,
		},
		{
			name:     "ignore drops nested nulls",
			settings: &Settings{NullValueHandling: Ignore},
			value:    map[string]any{"outer": map[string]any{"keep": 1, "drop": nil}},
			want:     `{"outer":{"keep":1}}`,
		},
		{
			name:     "ignore preserves null array elements",
			settings: &Settings{NullValueHandling: Ignore},
			value:    note{Title: "t", Tags: []any{nil, "a"}},
			want:     `{"title":"t","tags":[null,"a"]}`,
		},
		{
			name:     "ignore keeps large integers exact",
			settings: &Settings{NullValueHandling: Ignore},
			value:    map[string]any{"n": int64(9007199254740993)},
			want:     `{"n":9007199254740993}`,
		},
		{
			name:     "ignore keeps number representation",
			settings: &Settings{NullValueHandling: Ignore},
			value:    map[string]any{"f": 1.25, "i": 7},
			want:     `{"f":1.25,"i":7}`,
		},
		{
			name:     "ignore preserves member order",
			settings: &Settings{NullValueHandling: Ignore},
			value: struct {
				Zebra  string  `json:"zebra"`
				Apple  *string `json:"apple"`
				Mango  string  `json:"mango"`
				Nested note    `json:"nested"`
			}{Zebra: "z", Mango: "m", Nested: note{Title: "t"}},
			want: `{"zebra":"z","mango":"m","nested":{"title":"t"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Create(tt.settings).Serialize(&sb, tt.value); err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if got := sb.String(); got != tt.want {
				t.Errorf("Serialize() = %s, want %s", got, tt.want)
			}
		})
	}
}

// With no nulls present, the handling mode must not change the
// output at all.
func TestSerialize_IgnoreMatchesIncludeWithoutNulls(t *testing.T) {
	value := map[string]any{"n": int64(9007199254740993), "s": "x", "b": true}

	var include, ignore strings.Builder
	if err := Create(&Settings{NullValueHandling: Include}).Serialize(&include, value); err != nil {
		t.Fatalf("Serialize(Include) error = %v", err)
	}
	if err := Create(&Settings{NullValueHandling: Ignore}).Serialize(&ignore, value); err != nil {
		t.Fatalf("Serialize(Ignore) error = %v", err)
	}

	if include.String() != ignore.String() {
		t.Errorf("outputs differ without nulls:\ninclude: %s\nignore:  %s", include.String(), ignore.String())
	}
}

func TestSerialize_UnsupportedValue(t *testing.T) {
	var sb strings.Builder
	err := Create(nil).Serialize(&sb, make(chan int))
	if err == nil {
		t.Fatal("Serialize() expected error for unsupported value")
	}
	if !strings.Contains(err.Error(), "failed to serialize") {
		t.Errorf("error = %v, want serialization failure", err)
	}
}
