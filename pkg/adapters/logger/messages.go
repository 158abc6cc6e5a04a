package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":             "パイプラインを開始します",
		"Rendering %s":                  "%s を描画中",
		"Exporting %dx%d PNG (%s)":      "%dx%d のPNGを書き出し中 (%s)",
		"Saved %s (%d bytes)":           "%s を保存しました (%d バイト)",
		"Output saved to %s":            "出力を %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Stages
		"Rendered %s (%d bytes)":       "%s を描画しました (%d バイト)",
		"Mounted preview (theme %s)":   "プレビューを配置しました (テーマ %s)",
		"Export requested: %dx%d (%s)": "書き出し要求: %dx%d (%s)",

		// Capture pipeline
		"Capturing %dx%d (%s)":           "%dx%d をキャプチャ中 (%s)",
		"Removed %d interactive elements": "操作用の要素を %d 個取り除きました",
		"Delivered %s (%d bytes)":        "%s を出力しました (%d バイト)",
		"Background %q is not a hex color, keeping the rendered one": "背景 %q は16進カラーではないため、描画結果の背景を使用します",

		// Rasterizers (browser component)
		"Rasterizing %dx%d at scale %.1f":                      "%dx%d を %.1f 倍でラスタライズ中",
		"%d images still loading after %d ms, capturing anyway": "%d 枚の画像が %d ms 経過後も読み込み中です。そのままキャプチャします",

		// Warnings
		"Failed to save debug output: %v": "デバッグ出力の保存に失敗しました: %v",

		// Errors
		"Failed to render template: %s": "テンプレートの描画に失敗しました: %s",
		"Failed to mount preview: %s":   "プレビューの配置に失敗しました: %s",
		"Failed to export: %s":          "書き出しに失敗しました: %s",
		"Export failed (%s): %v":        "書き出しに失敗しました (%s): %v",
	})
}
