// Package main provides localization for the framefit CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Fit an image into a fixed-size frame and re-encode it": "画像を固定サイズのフレームに収めて再エンコード",

		// Flags
		"Path to a yaml config file with default settings":        "デフォルト設定を含むyamlファイルのパス",
		"Target resolution preset (4k, 2k, 1080p, 720p, custom)":  "出力解像度プリセット（4k, 2k, 1080p, 720p, custom）",
		"Custom target width in pixels (implies a custom preset)": "カスタム出力幅（ピクセル、customプリセット扱い）",
		"Custom target height in pixels (implies a custom preset)": "カスタム出力高さ（ピクセル、customプリセット扱い）",
		"Output format (png, jpeg, webp)":                          "出力フォーマット（png, jpeg, webp）",
		"Encoding quality between 0 and 1 (ignored for png)":       "エンコード品質（0〜1、pngでは無視）",
		"Fit mode (contain, cover, stretch)":                       "フィットモード（contain, cover, stretch）",
		"Background fill: transparent or a hex color like #1a1a2e": "背景：transparentまたは#1a1a2eのような16進カラー",
		"Directory for the output file (default: next to the input)": "出力ファイルのディレクトリ（デフォルト: 入力と同じ場所）",
		"Log level (debug, info, warn, error)":                     "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                  "すべてのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...":                 "中断されました。終了します...",
		"Output saved to %s":                            "出力を%sに保存しました",
		"Invalid target size: %s":                       "出力サイズが不正です: %s",
		"Failed to decode source image: %s":             "入力画像のデコードに失敗しました: %s",
		"Failed to resolve placement: %s":               "配置の計算に失敗しました: %s",
		"Failed to composite frame: %s":                 "フレームの合成に失敗しました: %s",
		"Failed to encode frame: %s":                    "フレームのエンコードに失敗しました: %s",
		"Processing %dx%d image into %dx%d frame":       "%dx%dの画像を%dx%dのフレームに処理中",
		"Produced %s (%d bytes)":                        "%sを生成しました（%dバイト）",
	})
}
