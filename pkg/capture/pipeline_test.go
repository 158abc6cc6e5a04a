package capture

import (
	"context"
	"errors"
	"image"
	"image/color"
	"regexp"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/user/tagshot/pkg/adapters/ggrenderer"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/mocks"
	"github.com/user/tagshot/pkg/ports"
)

const previewMarkup = `<div class="template-xpost" data-theme="light">` +
	`<p style="display: none">hidden</p>` +
	`<button>Share</button><input type="text">` +
	`<span>body</span></div>`

type fixture struct {
	raster *mocks.Rasterizer
	sink   *mocks.DownloadSink
	debug  *mocks.DebugSink
	logger *mocks.Logger
	doc    *dom.Document
	node   *html.Node
	pipe   *Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		raster: &mocks.Rasterizer{},
		sink:   &mocks.DownloadSink{},
		debug:  mocks.NewDebugSink(true),
		logger: mocks.NewLogger(),
	}
	f.doc = dom.NewDocument(dom.PageOptions{Theme: "dark", Stylesheet: ".x{}"})
	node, err := f.doc.Mount(dom.PreviewID, previewMarkup)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	f.node = node
	f.pipe = New(f.raster, ggrenderer.New(), f.sink, f.debug, f.logger, Options{
		Clock: func() time.Time { return time.UnixMilli(1723550000123) },
	})
	return f
}

func TestCapture_ExactSize(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t)

			res, err := f.pipe.Capture(context.Background(), mode, f.doc, f.node, Request{Width: 600, Height: 800})
			if err != nil {
				t.Fatalf("capture: %v", err)
			}
			b := res.Image.Bounds()
			if b.Dx() != 600 || b.Dy() != 800 {
				t.Errorf("expected 600x800, got %dx%d", b.Dx(), b.Dy())
			}
			if res.Bytes == 0 || len(f.sink.Deliveries) != 1 {
				t.Fatalf("expected one non-empty delivery, got %d", len(f.sink.Deliveries))
			}
			if res.Location != "mock://"+res.Filename {
				t.Errorf("unexpected location %q", res.Location)
			}
		})
	}
}

func TestCapture_RasterRequest(t *testing.T) {
	tests := []struct {
		mode          Mode
		width, height int
		scale         float64
	}{
		{ModeDirect, 600, 800, 2},
		{ModeHighQuality, 1800, 2400, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			f := newFixture(t)

			if _, err := f.pipe.Capture(context.Background(), tt.mode, f.doc, f.node, Request{Width: 600, Height: 800}); err != nil {
				t.Fatalf("capture: %v", err)
			}
			req, ok := f.raster.LastCall()
			if !ok {
				t.Fatal("expected rasterizer call")
			}
			if req.Width != tt.width || req.Height != tt.height || req.Scale != tt.scale {
				t.Errorf("expected %dx%d@%g, got %dx%d@%g", tt.width, tt.height, tt.scale, req.Width, req.Height, req.Scale)
			}
			if !req.Transparent {
				t.Error("expected transparent request without background")
			}
			if req.ImageTimeout != 15*time.Second {
				t.Errorf("expected 15s image timeout, got %v", req.ImageTimeout)
			}
		})
	}
}

func TestCapture_TransparentWithoutBackground(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t)
			// Opaque content in the middle of an otherwise transparent raster.
			f.raster.RasterizeFunc = func(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
				w, h := req.PixelSize()
				img := image.NewRGBA(image.Rect(0, 0, w, h))
				for y := h / 3; y < 2*h/3; y++ {
					for x := w / 3; x < 2*w/3; x++ {
						img.Set(x, y, color.RGBA{G: 200, A: 255})
					}
				}
				return img, nil
			}

			res, err := f.pipe.Capture(context.Background(), mode, f.doc, f.node, Request{Width: 60, Height: 90})
			if err != nil {
				t.Fatalf("capture: %v", err)
			}
			for _, pt := range []image.Point{{0, 0}, {59, 0}, {0, 89}, {59, 89}} {
				if _, _, _, a := res.Image.At(pt.X, pt.Y).RGBA(); a != 0 {
					t.Errorf("expected transparent corner at %v, got alpha %d", pt, a)
				}
			}
			if _, _, _, a := res.Image.At(30, 45).RGBA(); a == 0 {
				t.Error("expected opaque center")
			}
		})
	}
}

func TestCapture_BackgroundColor(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t)

			res, err := f.pipe.Capture(context.Background(), mode, f.doc, f.node, Request{Width: 40, Height: 40, Background: "#ff0000"})
			if err != nil {
				t.Fatalf("capture: %v", err)
			}
			r, g, b, a := res.Image.At(0, 0).RGBA()
			if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
				t.Errorf("expected opaque red corner, got %d %d %d %d", r, g, b, a)
			}

			req, _ := f.raster.LastCall()
			if req.Transparent || req.Background != "#ff0000" {
				t.Errorf("expected background passed to rasterizer, got %+v", req)
			}
			if !strings.Contains(req.HTML, "background: #ff0000") {
				t.Error("expected snapshot page to carry the background")
			}
		})
	}
}

func TestCaptureDirect_Normalizes(t *testing.T) {
	f := newFixture(t)

	if _, err := f.pipe.CaptureDirect(context.Background(), f.doc, f.node, Request{Width: 100, Height: 100}); err != nil {
		t.Fatalf("capture: %v", err)
	}
	req, _ := f.raster.LastCall()

	if strings.Contains(req.HTML, "display: none") {
		t.Error("expected hidden elements forced visible")
	}
	if !strings.Contains(req.HTML, `<p style="display: block; visibility: visible; opacity: 1">hidden</p>`) {
		t.Errorf("expected forced-visible paragraph in snapshot:\n%s", req.HTML)
	}
	if !strings.Contains(req.HTML, `class="template-xpost" data-theme="dark"`) {
		t.Error("expected template theme synced to the live theme")
	}

	// The live tree is never mutated.
	live, _ := dom.Render(f.node)
	if !strings.Contains(live, `data-theme="light"`) || !strings.Contains(live, "display: none") {
		t.Error("expected live preview untouched")
	}
}

func TestCaptureHighQuality_Container(t *testing.T) {
	f := newFixture(t)

	var attached bool
	f.raster.RasterizeFunc = func(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
		page, _ := f.doc.Render()
		attached = strings.Contains(page, "left: -99999px")
		w, h := req.PixelSize()
		return image.NewRGBA(image.Rect(0, 0, w, h)), nil
	}

	if _, err := f.pipe.CaptureHighQuality(context.Background(), f.doc, f.node, Request{Width: 100, Height: 50}); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !attached {
		t.Error("expected container attached to the document during rasterization")
	}

	req, _ := f.raster.LastCall()
	for _, s := range []string{
		"position: fixed; left: 0; top: 0; width: 300px; height: 150px; overflow: hidden; transform: scale(3); transform-origin: top left",
		"width: 100px; height: 50px; margin: 0; padding: 0",
		`data-theme="dark"`,
	} {
		if !strings.Contains(req.HTML, s) {
			t.Errorf("expected snapshot to contain %q\n%s", s, req.HTML)
		}
	}
	if strings.Contains(req.HTML, "<button") || strings.Contains(req.HTML, "<input") {
		t.Error("expected interactive controls stripped")
	}

	page, _ := f.doc.Render()
	if strings.Contains(page, "-99999px") {
		t.Error("expected container removed after capture")
	}
}

func TestCapture_KeepsDataURLStyles(t *testing.T) {
	const bg = "background-image: url(data:image/png;base64,iVBORw0KGgo=)"

	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t)
			node, err := f.doc.Mount(dom.PreviewID, `<div class="template-chat" style="`+bg+`"><span>hi</span></div>`)
			if err != nil {
				t.Fatalf("mount: %v", err)
			}

			if _, err := f.pipe.Capture(context.Background(), mode, f.doc, node, Request{Width: 60, Height: 40, Background: "#ffffff"}); err != nil {
				t.Fatalf("capture: %v", err)
			}
			req, _ := f.raster.LastCall()
			if !strings.Contains(req.HTML, bg) {
				t.Errorf("expected %q to survive normalization\n%s", bg, req.HTML)
			}
		})
	}
}

func TestCaptureHighQuality_CleanupOnFailure(t *testing.T) {
	f := newFixture(t)
	f.raster.RasterizeFunc = func(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
		return nil, errors.New("browser crashed")
	}

	before, _ := f.doc.Render()
	_, err := f.pipe.CaptureHighQuality(context.Background(), f.doc, f.node, Request{Width: 100, Height: 50})
	if err == nil {
		t.Fatal("expected error")
	}
	after, _ := f.doc.Render()
	if before != after {
		t.Error("expected document restored after failure")
	}
}

func TestCapture_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "rasterizer",
			setup: func(f *fixture) {
				f.raster.RasterizeFunc = func(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
					return nil, errors.New("tainted canvas")
				}
			},
		},
		{
			name: "empty raster",
			setup: func(f *fixture) {
				f.raster.RasterizeFunc = func(ctx context.Context, req ports.RasterRequest) (image.Image, error) {
					return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
				}
			},
		},
		{
			name: "sink",
			setup: func(f *fixture) {
				f.sink.DeliverFunc = func(ctx context.Context, filename string, data []byte) (string, error) {
					return "", errors.New("disk full")
				}
			},
		},
	}

	for _, tt := range tests {
		for _, mode := range Modes() {
			t.Run(tt.name+"/"+string(mode), func(t *testing.T) {
				f := newFixture(t)
				tt.setup(f)

				res, err := f.pipe.Capture(context.Background(), mode, f.doc, f.node, Request{Width: 10, Height: 10})
				if !errors.Is(err, ErrExportFailed) {
					t.Fatalf("expected ErrExportFailed, got %v", err)
				}
				if err.Error() != ExportMessage {
					t.Errorf("expected canonical message, got %q", err.Error())
				}
				var exportErr *ExportError
				if !errors.As(err, &exportErr) || exportErr.Mode != mode {
					t.Errorf("expected ExportError for mode %s, got %#v", mode, err)
				}
				if res.Image != nil {
					t.Error("expected no partial output")
				}
				if len(f.logger.Entries(ports.LevelError)) != 1 {
					t.Error("expected the cause to be logged once at error level")
				}
			})
		}
	}
}

func TestCapture_InvalidSize(t *testing.T) {
	sizes := []Request{{Width: 0, Height: 10}, {Width: 10, Height: -1}, {}}
	for _, req := range sizes {
		f := newFixture(t)

		_, err := f.pipe.CaptureDirect(context.Background(), f.doc, f.node, req)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%+v: expected ErrInvalidSize, got %v", req, err)
		}
		if errors.Is(err, ErrExportFailed) {
			t.Errorf("%+v: size violation must not be an export failure", req)
		}
		if len(f.raster.Calls) != 0 {
			t.Errorf("%+v: expected no rasterization", req)
		}
	}
}

func TestCapture_Debug(t *testing.T) {
	f := newFixture(t)

	if _, err := f.pipe.CaptureHighQuality(context.Background(), f.doc, f.node, Request{Width: 20, Height: 10}); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(f.debug.Snapshots["hq"]) == 0 {
		t.Error("expected snapshot saved")
	}
	raw := f.debug.Rasters["hq"]
	if raw == nil || raw.Bounds().Dx() != 60 || raw.Bounds().Dy() != 30 {
		t.Errorf("expected 60x30 raw raster, got %v", raw)
	}
}

func TestRasterize_DoesNotDeliver(t *testing.T) {
	f := newFixture(t)

	img, err := f.pipe.Rasterize(context.Background(), ModeDirect, f.doc, f.node, Request{Width: 32, Height: 16})
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("expected 32x16, got %v", img.Bounds())
	}
	if len(f.sink.Deliveries) != 0 {
		t.Error("expected no delivery")
	}
}

func TestFilename(t *testing.T) {
	f := newFixture(t)

	res, err := f.pipe.CaptureDirect(context.Background(), f.doc, f.node, Request{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if res.Filename != "tagshot-1723550000123.png" {
		t.Errorf("unexpected filename %q", res.Filename)
	}

	re := regexp.MustCompile(`^tagshot-\d+\.png$`)
	if name := Filename("", time.Now()); !re.MatchString(name) {
		t.Errorf("unexpected default filename %q", name)
	}
	if name := Filename("promo", time.UnixMilli(42)); name != "promo-42.png" {
		t.Errorf("unexpected product filename %q", name)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", ModeHighQuality, false},
		{"  ", ModeHighQuality, false},
		{"direct", ModeDirect, false},
		{"HQ", ModeHighQuality, false},
		{"high-quality", ModeHighQuality, false},
		{"fast", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) expected ErrUnknownMode, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#1a1a2e", color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}, false},
		{"FF000080", color.NRGBA{R: 255, A: 0x80}, false},
		{"transparent", color.NRGBA{}, false},
		{"#12", color.NRGBA{}, true},
		{"#ggg", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
