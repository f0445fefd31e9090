// Package main provides localization for the framecount CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Commands
		"Report frame-accurate duration statistics for a video file.": "動画ファイルのフレーム精度の再生時間統計を表示します。",
		"Inspect a video file and report frame-accurate duration statistics.": "動画ファイルを検査し、フレーム精度の再生時間統計を表示",
		"Show version information.": "バージョン情報を表示",
		"framecount version %s":     "framecount バージョン %s",

		// Arguments and flags
		"Path to the input media file.":                          "入力メディアファイルのパス",
		"Decoder thread count (-1 = all logical cores, default: 1).": "デコーダのスレッド数（-1 = 全論理コア、デフォルト: 1）",
		"YAML configuration file.":                               "YAML設定ファイル",
		"Disable colored output.":                                "カラー出力を無効化",
		"Suppress progress and log output.":                      "進捗とログ出力を抑制",

		// Progress
		"Processing packets...": "パケットを処理中...",
		"Processing complete.":  "処理が完了しました。",

		// Thread resolution
		"Setting threading to the number of available cores: %d.": "スレッド数を利用可能なコア数に設定します: %d。",
		"invalid thread count provided. Defaulting to 1 thread.":  "無効なスレッド数が指定されました。1スレッドにフォールバックします。",

		// Report
		"Basic file metadata -":          "ファイルの基本メタデータ -",
		"Declared duration (ticks): %d":  "宣言された再生時間（ティック）: %d",
		"Media Duration: %s":             "メディア再生時間: %s",
		"Time base numerator: %d":        "タイムベース分子: %d",
		"Time base denominator: %d":      "タイムベース分母: %d",
		"MP4 box metadata -":             "MP4ボックスのメタデータ -",
		"Movie timescale: %d":            "ムービータイムスケール: %d",
		"Movie duration (ticks): %d":     "ムービー再生時間（ティック）: %d",
		"Movie duration: %s":             "ムービー再生時間: %s",
		"Video track duration: %s":       "ビデオトラック再生時間: %s",
		"Calculated from the frames -":   "フレームから算出 -",
		"Last key frame id: %s":          "最後のキーフレームID: %s",
		"Frames count: %s":               "フレーム数: %s",
		"Last Frame Time: %s":            "最終フレーム時刻: %s",
		"Code execution time: %s":        "実行時間: %s",
	})
}
