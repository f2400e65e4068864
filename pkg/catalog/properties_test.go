package catalog

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPropertiesUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Properties
		wantErr bool
	}{
		{
			name: "scalar values",
			yaml: "country: Korea\nyear: 2019\nreleased: true\nrating: 8.5\n",
			want: Properties{
				"country":  "Korea",
				"year":     2019,
				"released": true,
				"rating":   8.5,
			},
		},
		{
			name: "list of scalars",
			yaml: "genres:\n  - thriller\n  - drama\n",
			want: Properties{"genres": []any{"thriller", "drama"}},
		},
		{
			name: "empty mapping",
			yaml: "{}\n",
			want: Properties{},
		},
		{
			name:    "nested mapping rejected",
			yaml:    "credits:\n  director: Bong Joon-ho\n",
			wantErr: true,
		},
		{
			name:    "list of mappings rejected",
			yaml:    "cast:\n  - name: Song Kang-ho\n",
			wantErr: true,
		},
		{
			name:    "top-level sequence rejected",
			yaml:    "- a\n- b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var props Properties
			err := yaml.Unmarshal([]byte(tt.yaml), &props)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual(props, tt.want) {
				t.Errorf("properties = %#v, want %#v", props, tt.want)
			}
		})
	}
}
