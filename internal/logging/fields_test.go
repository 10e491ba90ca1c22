package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	cases := []struct {
		name     string
		base     []slog.Attr
		service  string
		version  string
		wantKeys []string
	}{
		{name: "both", service: "logo-studio", version: "v1", wantKeys: []string{FieldService, FieldVersion}},
		{name: "service only", service: "logo-studio", wantKeys: []string{FieldService}},
		{name: "empty keeps base", base: []slog.Attr{slog.String(FieldWorkspace, "ws-1")}, wantKeys: []string{FieldWorkspace}},
		{name: "nothing", wantKeys: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := WithCommon(tc.base, tc.service, tc.version)
			if len(attrs) != len(tc.wantKeys) {
				t.Fatalf("expected %d attrs, got %+v", len(tc.wantKeys), attrs)
			}
			for i, key := range tc.wantKeys {
				if attrs[i].Key != key {
					t.Fatalf("attr %d: expected key %q, got %q", i, key, attrs[i].Key)
				}
			}
		})
	}
}

func TestFieldKeysAreUnique(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldRequestID, FieldPath, FieldMethod,
		FieldStatusCode, FieldLeagueID, FieldWorkspace, FieldTeamID, FieldCount,
		FieldDurationMS, FieldClientIP, FieldTool, FieldError,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate field key %q", k)
		}
		seen[k] = true
	}
}
