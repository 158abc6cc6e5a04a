// Package main provides the CLI entry point for tagshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/user/tagshot/pkg/adapters/datauri"
	"github.com/user/tagshot/pkg/adapters/debugsink"
	"github.com/user/tagshot/pkg/adapters/filesink"
	"github.com/user/tagshot/pkg/adapters/ggrenderer"
	"github.com/user/tagshot/pkg/adapters/logger"
	"github.com/user/tagshot/pkg/adapters/nullsink"
	"github.com/user/tagshot/pkg/adapters/osfilesystem"
	"github.com/user/tagshot/pkg/capture"
	"github.com/user/tagshot/pkg/config"
	"github.com/user/tagshot/pkg/dom"
	"github.com/user/tagshot/pkg/orchestrator"
	"github.com/user/tagshot/pkg/pipeline"
	"github.com/user/tagshot/pkg/ports"
	"github.com/user/tagshot/pkg/stages/export"
	"github.com/user/tagshot/pkg/stages/mount"
	"github.com/user/tagshot/pkg/stages/render"
	"github.com/user/tagshot/pkg/state"
	"github.com/user/tagshot/pkg/summarizer"
	"github.com/user/tagshot/pkg/templates"
	"github.com/user/tagshot/pkg/transcript"
)

var version = "dev"

// Render output formats.
const (
	formatMarkup   = "markup"
	formatPage     = "page"
	formatMarkdown = "markdown"
)

var errExportDisabled = errors.New("export is not available in this command")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "tagshot",
		Usage:           l10n.T("Render mock social posts and chats and export them as PNG"),
		Version:         version,
		HideHelpCommand: true,
		Suggest:         true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Configuration")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  l10n.T("Print the markup of a template"),
				Flags:  append(stateFlags(), renderFlags()...),
				Action: runRender,
			},
			{
				Name:   "export",
				Usage:  l10n.T("Export a template as PNG"),
				Flags:  append(stateFlags(), exportFlags()...),
				Action: runExport,
			},
			{
				Name:   "link",
				Usage:  l10n.T("Print a share link for the state"),
				Flags:  append(stateFlags(), &cli.StringFlag{Name: "base", Value: "", Usage: l10n.T("Base URL the query is appended to"), Category: l10n.T("Output")}),
				Action: runLink,
			},
			{
				Name:   "variants",
				Usage:  l10n.T("List the available templates"),
				Action: runVariants,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("tagshot version %s", version))
					return nil
				},
			},
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatMarkup, Usage: l10n.T("Output format (markup, page, markdown)"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Write to a file instead of stdout"), Category: l10n.T("Output")},
	}
}

func exportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: l10n.T("Capture mode (direct, hq)"), Category: l10n.T("Capture")},
		&cli.BoolFlag{Name: "transparent", Usage: l10n.T("Keep the background transparent"), Category: l10n.T("Capture")},
		&cli.StringFlag{Name: "engine", Aliases: []string{"e"}, Usage: l10n.T("Rasterizer engine (chromedp, rod, playwright)"), Category: l10n.T("Capture")},
		&cli.IntFlag{Name: "image-timeout", Usage: l10n.T("Milliseconds to wait for images"), Category: l10n.T("Capture")},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("Download directory"), Category: l10n.T("Output")},
		&cli.BoolFlag{Name: "data-url", Usage: l10n.T("Print a data URL instead of writing a file"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Write an export summary to this file (Markdown, or YAML for .yaml/.yml)"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "chrome-path", Usage: l10n.T("Path to Chrome executable (falls back to CHROME_PATH env, then system default)"), Category: l10n.T("Browser")},
		&cli.BoolFlag{Name: "no-headless", Usage: l10n.T("Run browser in non-headless mode"), Category: l10n.T("Browser")},
		&cli.BoolFlag{Name: "no-sandbox", Usage: l10n.T("Disable the Chrome sandbox"), Category: l10n.T("Browser")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save intermediate output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
	}
}

// env holds what every command needs.
type env struct {
	cfg config.Config
	log ports.Logger
	fs  ports.FileSystem
}

func setup(c *cli.Context) (env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return env{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	applyConfigFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return env{}, err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	return env{cfg: cfg, log: log, fs: osfilesystem.New()}, nil
}

// applyConfigFlags lets command flags override the configuration file.
func applyConfigFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("transparent") {
		cfg.Transparent = c.Bool("transparent")
	}
	if c.IsSet("engine") {
		cfg.Engine = c.String("engine")
	}
	if c.IsSet("image-timeout") {
		cfg.ImageTimeoutMs = c.Int("image-timeout")
	}
	if c.IsSet("out") {
		cfg.OutputDir = c.String("out")
	}
	if c.IsSet("chrome-path") {
		cfg.ChromePath = c.String("chrome-path")
	}
	if c.IsSet("no-headless") {
		cfg.Headless = !c.Bool("no-headless")
	}
	if c.IsSet("no-sandbox") {
		cfg.NoSandbox = c.Bool("no-sandbox")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
}

func newOrchestrator(e env, debug ports.DebugSink, exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]) *orchestrator.Orchestrator {
	return orchestrator.New(
		render.NewStage(debug, e.log),
		mount.NewStage(e.log),
		exportStage,
		e.log,
	)
}

func runRender(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	st, err := loadState(c, e)
	if err != nil {
		return err
	}

	noExport := pipeline.StageFunc[pipeline.ExportInput, pipeline.ExportResult](
		func(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
			return pipeline.ExportResult{}, errExportDisabled
		})
	orch := newOrchestrator(e, nullsink.New(), noExport)

	oc := e.cfg.ToOrchestratorConfig(st)
	preview, err := orch.Preview(c.Context, oc)
	if err != nil {
		return err
	}

	var out string
	switch c.String("format") {
	case formatMarkup:
		out = preview.Markup
	case formatPage:
		out, err = preview.Document.Snapshot(preview.Node, dom.SnapshotOptions{Background: oc.Background()})
	case formatMarkdown:
		out, err = transcript.New().Document(c.Context, preview.Kind, preview.Markup)
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
	if err != nil {
		return err
	}

	if path := c.String("output"); path != "" {
		if err := e.fs.WriteFile(path, []byte(out)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		e.log.Info(l10n.F("Output saved to %s", path))
	} else {
		fmt.Fprintln(c.App.Writer, strings.TrimRight(out, "\n"))
	}

	return saveState(c, e, st)
}

func runExport(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	st, err := loadState(c, e)
	if err != nil {
		return err
	}

	rasterizer, err := newRasterizer(e.cfg.Engine, e.fs, e.cfg.ToBrowserOptions(), e.log)
	if err != nil {
		return err
	}
	renderer := ggrenderer.New()

	var sink ports.DownloadSink
	if c.Bool("data-url") {
		sink = datauri.New(c.App.Writer)
	} else {
		sink = filesink.New(e.cfg.OutputDir, e.fs)
	}

	var debug ports.DebugSink
	if e.cfg.Debug {
		if err := e.fs.MkdirAll(e.cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		debug = debugsink.New(e.cfg.DebugDir, e.fs, renderer)
	} else {
		debug = nullsink.New()
	}

	pipe := capture.New(rasterizer, renderer, sink, debug, e.log, e.cfg.ToCaptureOptions())
	orch := newOrchestrator(e, debug, export.NewStage(pipe, e.log))

	result, err := orch.Run(c.Context, e.cfg.ToOrchestratorConfig(st))
	if err != nil {
		if errors.Is(err, capture.ErrExportFailed) {
			return errors.New(l10n.T(capture.ExportMessage))
		}
		return err
	}

	if path := c.String("summary"); path != "" {
		w := summarizer.NewWriter(summarizer.ForPath(path, summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)), e.fs)
		if err := w.Write(path, buildSummary(e.cfg, st, result)); err != nil {
			return err
		}
		e.log.Info(l10n.F("Summary saved to %s", path))
	}

	if !c.Bool("data-url") {
		fmt.Fprintln(c.App.Writer, result.Location)
	}

	return saveState(c, e, st)
}

func buildSummary(cfg config.Config, st state.AppState, r orchestrator.RunResult) *summarizer.Summary {
	scale := cfg.DirectScale
	if r.Mode == capture.ModeHighQuality {
		scale = cfg.HighQualityScale
	}
	label := ""
	if d, ok := templates.Describe(r.Kind); ok {
		label = d.Label
	}

	return summarizer.NewBuilder().
		WithVariant(summarizer.VariantInfo{
			Kind:  r.Kind.String(),
			Label: label,
			Theme: st.Theme,
			Tag:   st.Tag,
		}).
		WithSettings(summarizer.Settings{
			Mode:        string(r.Mode),
			Engine:      cfg.Engine,
			Scale:       scale,
			Background:  st.Bg,
			Transparent: r.Transparent,
		}).
		WithOutput(summarizer.OutputInfo{
			Filename:   r.Filename,
			Location:   r.Location,
			Width:      r.Width,
			Height:     r.Height,
			FileSize:   int64(r.Bytes),
			DurationMs: int(r.Duration.Milliseconds()),
		}).
		Build()
}

func runLink(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	st, err := loadState(c, e)
	if err != nil {
		return err
	}

	query := state.EncodeQuery(st).Encode()
	fmt.Fprintln(c.App.Writer, c.String("base")+"?"+query)
	return nil
}

func runVariants(c *cli.Context) error {
	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{l10n.T("Kind"), l10n.T("Description"), l10n.T("Required"), l10n.T("Optional")})
	for _, kind := range templates.Kinds() {
		d, _ := templates.Describe(kind)
		t.AppendRow(table.Row{kind.String(), d.Label, strings.Join(d.Required, ", "), strings.Join(d.Optional, ", ")})
	}
	t.Render()
	return nil
}
