package mount

import (
	"context"
	"strings"
	"testing"

	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/mocks"
	"github.com/user/tagshot/pkg/pipeline"
)

func TestStage_Execute(t *testing.T) {
	stage := NewStage(mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.MountInput{
		Markup: `<div class="template-banner"><span class="tag">#X</span></div>`,
		Theme:  "dark",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Document == nil || result.Preview == nil {
		t.Fatal("expected document and preview")
	}
	if result.Document.ByID(dom.PreviewID) != result.Preview {
		t.Error("preview should be the #preview element")
	}
	if result.Document.Theme() != "dark" {
		t.Errorf("expected dark theme, got %q", result.Document.Theme())
	}

	page, err := result.Document.Render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"<title>tagshot</title>", `class="template-banner"`, "--bg-primary"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestStage_Execute_Background(t *testing.T) {
	stage := NewStage(mocks.NewLogger())

	tests := []struct {
		name       string
		background string
		want       string
		present    bool
	}{
		{"color", "#ff0000", "#ff0000", true},
		{"transparent", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := stage.Execute(context.Background(), pipeline.MountInput{
				Markup:     "<p>hi</p>",
				Background: tt.background,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := dom.Style(result.Preview, "background")
			if ok != tt.present || got != tt.want {
				t.Errorf("background = %q (%v), want %q (%v)", got, ok, tt.want, tt.present)
			}
		})
	}
}
