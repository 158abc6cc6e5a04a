package orchestrator

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/mocks"
	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/stages/mount"
	"github.com/user/tagshot/pkg/stages/render"
	"github.com/user/tagshot/pkg/state"
	"github.com/user/tagshot/pkg/templates"
)

// mockRenderStage is a mock for the render stage.
type mockRenderStage struct {
	input pipeline.RenderInput
	err   error
}

func (m *mockRenderStage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.RenderResult{}, m.err
	}
	return pipeline.RenderResult{Kind: input.Record.Kind(), Markup: "<div>mock</div>"}, nil
}

// mockMountStage is a mock for the mount stage.
type mockMountStage struct {
	input pipeline.MountInput
	err   error
}

func (m *mockMountStage) Execute(ctx context.Context, input pipeline.MountInput) (pipeline.MountResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.MountResult{}, m.err
	}
	doc := dom.NewDocument(dom.PageOptions{Theme: input.Theme})
	node, err := doc.Mount(dom.PreviewID, input.Markup)
	return pipeline.MountResult{Document: doc, Preview: node}, err
}

// mockExportStage is a mock for the export stage.
type mockExportStage struct {
	input  pipeline.ExportInput
	called bool
	err    error
}

func (m *mockExportStage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	m.input = input
	m.called = true
	if m.err != nil {
		return pipeline.ExportResult{}, m.err
	}
	return pipeline.ExportResult{Result: capture.Result{
		Mode:     input.Mode,
		Image:    image.NewNRGBA(image.Rect(0, 0, input.Request.Width, input.Request.Height)),
		Filename: "tagshot-1.png",
		Location: "/out/tagshot-1.png",
		Bytes:    42,
	}}, nil
}

func TestOrchestrator_Run(t *testing.T) {
	renderStage := &mockRenderStage{}
	mountStage := &mockMountStage{}
	exportStage := &mockExportStage{}
	logger := mocks.NewLogger()

	orch := New(renderStage, mountStage, exportStage, logger)

	config := DefaultConfig()
	config.State.Theme = "dark"
	config.State.Width = 600
	config.State.Height = 800

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := renderStage.input.Record.(templates.PostRecord); !ok {
		t.Errorf("expected a post record, got %T", renderStage.input.Record)
	}
	if mountStage.input.Theme != "dark" || mountStage.input.Background != "#ffffff" {
		t.Errorf("unexpected mount input: %+v", mountStage.input)
	}

	want := capture.Request{Width: 600, Height: 800, Background: "#ffffff"}
	if exportStage.input.Request != want {
		t.Errorf("request = %+v, want %+v", exportStage.input.Request, want)
	}
	if exportStage.input.Mode != capture.ModeHighQuality {
		t.Errorf("expected high-quality mode, got %s", exportStage.input.Mode)
	}
	if exportStage.input.Node == nil || exportStage.input.Document == nil {
		t.Error("export should receive the mounted preview")
	}

	if result.Kind != templates.KindPost || result.Markup != "<div>mock</div>" {
		t.Errorf("unexpected render result: %s %q", result.Kind, result.Markup)
	}
	if result.Location != "/out/tagshot-1.png" || result.Bytes != 42 {
		t.Errorf("unexpected export result: %+v", result)
	}
	if result.Width != 600 || result.Height != 800 {
		t.Errorf("size = %dx%d", result.Width, result.Height)
	}
	if len(logger.Entries(ports.LevelInfo)) == 0 {
		t.Error("expected orchestrator info logs")
	}
}

func TestOrchestrator_Run_Transparent(t *testing.T) {
	mountStage := &mockMountStage{}
	exportStage := &mockExportStage{}
	orch := New(&mockRenderStage{}, mountStage, exportStage, mocks.NewLogger())

	config := DefaultConfig()
	config.Mode = capture.ModeDirect
	config.Transparent = true
	config.State.Bg = "#123456"

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exportStage.input.Request.Background != "" || mountStage.input.Background != "" {
		t.Error("transparent export should drop the background")
	}
	if exportStage.input.Mode != capture.ModeDirect {
		t.Errorf("expected direct mode, got %s", exportStage.input.Mode)
	}
	if !result.Transparent {
		t.Error("result should report transparency")
	}
}

func TestOrchestrator_Run_Duration(t *testing.T) {
	orch := New(&mockRenderStage{}, &mockMountStage{}, &mockExportStage{}, mocks.NewLogger())
	base := time.Unix(1700000000, 0)
	calls := 0
	orch.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 250 * time.Millisecond)
	}

	result, err := orch.Run(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Duration != 250*time.Millisecond {
		t.Errorf("duration = %v", result.Duration)
	}
}

func TestOrchestrator_Run_StageErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		render  error
		mount   error
		export  error
		exports bool
	}{
		{"render", boom, nil, nil, false},
		{"mount", nil, boom, nil, false},
		{"export", nil, nil, boom, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exportStage := &mockExportStage{err: tt.export}
			logger := mocks.NewLogger()
			orch := New(&mockRenderStage{err: tt.render}, &mockMountStage{err: tt.mount}, exportStage, logger)

			_, err := orch.Run(context.Background(), DefaultConfig())
			if !errors.Is(err, boom) {
				t.Fatalf("expected wrapped stage error, got %v", err)
			}
			if exportStage.called != tt.exports {
				t.Errorf("export called = %v, want %v", exportStage.called, tt.exports)
			}
			if len(logger.Entries(ports.LevelError)) != 1 {
				t.Errorf("expected one error log, got %d", len(logger.Entries(ports.LevelError)))
			}
		})
	}
}

func TestOrchestrator_Run_ExportFailureKeepsSentinel(t *testing.T) {
	exportErr := &capture.ExportError{Mode: capture.ModeHighQuality, Err: errors.New("chrome crashed")}
	orch := New(&mockRenderStage{}, &mockMountStage{}, &mockExportStage{err: exportErr}, mocks.NewLogger())

	_, err := orch.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, capture.ErrExportFailed) {
		t.Errorf("expected ErrExportFailed, got %v", err)
	}
}

func TestOrchestrator_InvalidState(t *testing.T) {
	renderStage := &mockRenderStage{}
	orch := New(renderStage, &mockMountStage{}, &mockExportStage{}, mocks.NewLogger())

	config := DefaultConfig()
	config.State.Template = "fax"

	if _, err := orch.Run(context.Background(), config); !errors.Is(err, state.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if renderStage.input.Record != nil {
		t.Error("render stage should not run for an invalid state")
	}
}

func TestOrchestrator_Preview_RealStages(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	logger := mocks.NewLogger()
	orch := New(render.NewStage(sink, logger), mount.NewStage(logger), &mockExportStage{}, logger)

	for _, kind := range templates.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			config := DefaultConfig()
			config.State.Template = kind.String()

			preview, err := orch.Preview(context.Background(), config)
			if err != nil {
				t.Fatalf("Preview failed: %v", err)
			}
			if preview.Kind != kind {
				t.Errorf("kind = %s, want %s", preview.Kind, kind)
			}
			if preview.Node.FirstChild == nil {
				t.Error("preview should contain the mounted markup")
			}
			if string(sink.Markup) != preview.Markup {
				t.Error("debug sink should hold the latest markup")
			}
		})
	}
}
