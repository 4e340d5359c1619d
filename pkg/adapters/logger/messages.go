package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Run level messages (info)
		"Applying %s with seed %d":               "%s をシード %d で適用します",
		"Processing %s":                          "%s を処理中",
		"Processing %d images with %d workers":   "%d 枚の画像を %d ワーカーで処理中",
		"Batch completed: %d succeeded, %d failed": "バッチ完了: 成功 %d, 失敗 %d",
		"Output saved to %s":                     "出力を %s に保存しました",
		"Summary saved to %s":                    "サマリーを %s に保存しました",
		"Channel selector: %d":                   "チャンネル選択: %d",
		"Interrupted, shutting down...":          "中断されました。シャットダウン中...",

		// Decode stage
		"Decoded %s image: %dx%d":    "%s 画像をデコードしました: %dx%d",
		"Downscaling %dx%d to %dx%d": "%dx%d を %dx%d に縮小中",

		// Filter stage
		"Running %d filters on %s":    "%[2]s に %[1]d 個のフィルターを適用中",
		"Step %d/%d: %s (%d ms)":      "ステップ %d/%d: %s (%d ms)",
		"Applied %s to %dx%d in %d ms": "%s を %dx%d に適用 (%d ms)",

		// Encode stage
		"Encoded %s: %d bytes": "%s エンコード完了: %d バイト",

		// Warnings
		"Failed to save debug step %d: %v": "デバッグステップ %d の保存に失敗しました: %v",
		"Failed to save debug output: %v":  "デバッグ出力の保存に失敗しました: %v",

		// Errors
		"Failed to read %s: %v":             "%s の読み込みに失敗しました: %v",
		"Failed to decode %s: %v":           "%s のデコードに失敗しました: %v",
		"Failed to apply filters to %s: %v": "%s へのフィルター適用に失敗しました: %v",
		"Failed to combine %s side by side: %v": "%s の横並び合成に失敗しました: %v",
		"Failed to encode %s: %v":           "%s のエンコードに失敗しました: %v",
		"Failed to write output: %v":        "出力の書き込みに失敗しました: %v",
		"Failed to write summary: %v":       "サマリーの書き込みに失敗しました: %v",
	})
}
