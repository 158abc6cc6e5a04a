// Package main provides localization for the tagshot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",
		"State":         "内容",
		"Capture":       "キャプチャ",
		"Output":        "出力先",
		"Browser":       "ブラウザ設定",
		"Debug":         "デバッグ",

		// Commands
		"Render mock social posts and chats and export them as PNG": "SNS投稿やチャットのモック画像を描画してPNGで書き出す",
		"Print the markup of a template":                            "テンプレートのマークアップを表示",
		"Export a template as PNG":                                  "テンプレートをPNGで書き出す",
		"Print a share link for the state":                          "現在の内容の共有リンクを表示",
		"List the available templates":                              "利用できるテンプレートを一覧表示",
		"Show version information":                                  "バージョン情報を表示",
		"tagshot version %s":                                        "tagshot バージョン %s",

		// Global flags
		"YAML configuration file":              "YAML設定ファイル",
		"Log level (debug, info, warn, error)": "ログレベル (debug, info, warn, error)",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Render flags
		"Output format (markup, page, markdown)": "出力形式 (markup, page, markdown)",
		"Write to a file instead of stdout":      "標準出力の代わりにファイルへ書き込む",

		// Export flags
		"Capture mode (direct, hq)":                     "キャプチャモード (direct, hq)",
		"Keep the background transparent":               "背景を透過のままにする",
		"Rasterizer engine (chromedp, rod, playwright)": "ラスタライズエンジン (chromedp, rod, playwright)",
		"Milliseconds to wait for images":               "画像の読み込みを待つミリ秒数",
		"Download directory":                            "ダウンロード先ディレクトリ",
		"Print a data URL instead of writing a file":    "ファイルの代わりにデータURLを出力",
		"Write an export summary to this file (Markdown, or YAML for .yaml/.yml)": "書き出しサマリーをこのファイルに保存 (Markdown、.yaml/.yml なら YAML)",
		"Path to Chrome executable (falls back to CHROME_PATH env, then system default)": "Chrome実行ファイルのパス（未指定時はCHROME_PATH環境変数、次にシステムデフォルト）",
		"Run browser in non-headless mode": "ブラウザを非ヘッドレスモードで実行",
		"Disable the Chrome sandbox":       "Chromeのサンドボックスを無効化",
		"Save intermediate output":         "中間出力を保存",
		"Directory for debug output":       "デバッグ出力先ディレクトリ",

		// Link flags
		"Base URL the query is appended to": "クエリを付加するベースURL",

		// State flags
		"State file (YAML)":                          "状態ファイル (YAML)",
		"Share link or query string to start from":   "起点にする共有リンクまたはクエリ文字列",
		"Save the resulting state to the state file": "結果の状態を状態ファイルに保存",
		"Export width in CSS pixels":                 "書き出し幅 (CSSピクセル)",
		"Export height in CSS pixels":                "書き出し高さ (CSSピクセル)",
		"Template (post, banner, chat, popup, whatsapp, messenger, assistant)": "テンプレート (post, banner, chat, popup, whatsapp, messenger, assistant)",
		"Hashtag shown by the template":                "テンプレートに表示するハッシュタグ",
		"Main text":                                    "本文",
		"Theme (light, dark)":                          "テーマ (light, dark)",
		"Background color":                             "背景色",
		"Author name":                                  "投稿者名",
		"Author handle":                                "投稿者ハンドル",
		"Author avatar URL":                            "投稿者アバターURL",
		"Like count":                                   "いいね数",
		"Repost count":                                 "リポスト数",
		"Reply count":                                  "返信数",
		"Timestamp":                                    "日時",
		"Banner headline":                              "バナーの見出し",
		"Chat contact name":                            "チャット相手の名前",
		"Chat contact avatar URL":                      "チャット相手のアバターURL",
		"Popup title":                                  "ポップアップのタイトル",
		"Popup buttons, comma separated":               "ポップアップのボタン（カンマ区切り）",
		"WhatsApp contact":                             "WhatsAppの相手",
		"WhatsApp messages, one per line":              "WhatsAppのメッセージ（1行に1件）",
		"WhatsApp last seen":                           "WhatsAppの最終オンライン",
		"Messenger contact":                            "Messengerの相手",
		"Messenger messages, one per line":             "Messengerのメッセージ（1行に1件）",
		"Assistant conversation, one message per line": "アシスタントとの会話（1行に1件）",
		"Assistant model name":                         "アシスタントのモデル名",
		"Link preview URL":                             "リンクプレビューのURL",
		"Show the WhatsApp contact as online":          "WhatsAppの相手をオンライン表示",
		"Show the Messenger typing indicator":          "Messengerの入力中表示",
		"Show the Messenger contact as online":         "Messengerの相手をオンライン表示",
		"Show the assistant as streaming":              "アシスタントを生成中として表示",

		// Variants table
		"Kind":        "種類",
		"Description": "説明",
		"Required":    "必須",
		"Optional":    "任意",

		// Results
		"Summary saved to %s": "サマリーを %s に保存しました",
		"State saved to %s":   "状態を %s に保存しました",

		// Export summary
		"Export Summary":          "書き出しサマリー",
		"Template":                "テンプレート",
		"Variant":                 "種類",
		"Theme":                   "テーマ",
		"Tag":                     "タグ",
		"Transparent":             "透過",
		"Mode":                    "モード",
		"Engine":                  "エンジン",
		"Scale":                   "倍率",
		"Background":              "背景",
		"File":                    "ファイル",
		"Location":                "保存先",
		"Size":                    "サイズ",
		"File Size":               "ファイルサイズ",
		"Duration":                "所要時間",
		"Generated at":            "生成日時",
		"2006-01-02 15:04:05 MST": "2006年01月02日 15:04:05 MST",
		"Item":                    "項目",
		"Value":                   "値",

		// Errors
		"export failed, please retry": "書き出しに失敗しました。もう一度お試しください",
	})
}
