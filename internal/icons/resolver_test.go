package icons

import (
	"errors"
	"testing"
)

func TestResolveURL(t *testing.T) {
	r := NewResolver("https://cdn.example.com/map/icons", "")

	tests := []struct {
		name    string
		icon    string
		format  string
		want    string
		wantErr error
	}{
		{name: "default format", icon: "ore", want: "https://cdn.example.com/map/icons/png/ore.png"},
		{name: "explicit format", icon: "chest", format: "svg", want: "https://cdn.example.com/map/icons/svg/chest.svg"},
		{name: "empty icon", icon: "", wantErr: ErrEmptyIcon},
		{name: "unknown format", icon: "ore", format: "gif", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveURL(tt.icon, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("ore") == Glyph("nope") {
		t.Error("known icon should not use the fallback glyph")
	}
	if Glyph("nope") != "◆" {
		t.Errorf("fallback glyph = %q", Glyph("nope"))
	}
}
