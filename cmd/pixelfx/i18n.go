package main

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Commands
		"Apply image filters from the command line":   "コマンドラインから画像フィルターを適用します",
		"Apply a filter chain to one or more images":  "1 枚以上の画像にフィルターチェーンを適用します",
		"List available filters and presets":          "利用可能なフィルターとプリセットを一覧表示します",
		"Filters:":                                    "フィルター:",
		"Presets:":                                    "プリセット:",
		"Error: %s":                                   "エラー: %s",

		// Flag categories
		"Output":  "出力",
		"Filters": "フィルター",
		"Batch":   "バッチ",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Flag usages
		"Output file path (single input)":                                        "出力ファイルパス (入力が 1 つの場合)",
		"Output directory (one or more inputs)":                                  "出力ディレクトリ (入力が複数の場合)",
		"Output format (png, jpeg, bmp); inferred from --output when omitted":    "出力形式 (png, jpeg, bmp)。省略時は --output から推定",
		"JPEG quality (1-100)":                                                   "JPEG 品質 (1-100)",
		"Downscale inputs whose longer side exceeds this size (0 = off)":         "長辺がこのサイズを超える入力を縮小 (0 = 無効)",
		"Write the source and the result next to each other":                   "元画像と結果を横に並べて出力",
		"Gap in pixels between the side-by-side images":                         "横並び画像の間隔 (ピクセル)",
		"Filter to apply, repeatable and applied in order":                       "適用するフィルター (複数指定可、指定順に適用)",
		"Named filter chain (see the filters command)":                           "名前付きフィルターチェーン (filters コマンドを参照)",
		"Override a parameter, e.g. --set chunk_size=8":                          "パラメータを上書き (例: --set chunk_size=8)",
		"Random seed (0 = time-based)":                                           "乱数シード (0 = 時刻から生成)",
		"Pin the channel-offset channel (0 R, 1 G, 2 B) instead of rolling it":   "チャンネルオフセットの対象チャンネルを固定 (0 R, 1 G, 2 B)",
		"YAML configuration file":                                                "YAML 設定ファイル",
		"Number of images processed in parallel":                                 "並列処理する画像数",
		"Output execution summary to file (Markdown format)":                     "実行サマリーをファイルに出力 (Markdown 形式)",
		"Save every intermediate step":                                           "すべての中間ステップを保存",
		"Directory for debug output":                                             "デバッグ出力先ディレクトリ",
		"Log level (debug, info, warn, error)":                                   "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                                                "ログ出力をすべて抑制",

		// Summary report
		"Filter Summary":          "フィルターサマリー",
		"Generated":               "生成日時",
		"2006-01-02 15:04:05 MST": "2006年01月02日 15:04:05 MST",
		"Settings":                "設定",
		"Item":                    "項目",
		"Value":                   "値",
		"Seed":                    "シード",
		"Channel":                 "チャンネル",
		"Output Format":           "出力形式",
		"Quality":                 "品質",
		"Max Dimension":           "最大サイズ",
		"Unlimited":               "無制限",
		"None":                    "なし",
		"Workers":                 "ワーカー数",
		"Results":                 "結果",
		"Input":                   "入力",
		"Size":                    "サイズ",
		"File Size":               "ファイルサイズ",
		"Filter Time":             "フィルター時間",
		"Failed":                  "失敗",
		"from":                    "元",
		"Filter Timings":          "フィルター別時間",
		"Filter":                  "フィルター",
		"Runs":                    "実行回数",
		"Total":                   "合計",
		"Average":                 "平均",
		"Generated by":            "生成元",
	})
}
