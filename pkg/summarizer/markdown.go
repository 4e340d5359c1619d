package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) Option {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion sets the version shown in the footer.
func WithVersion(v string) Option {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// NewMarkdownFormatter creates a formatter. Labels are left untranslated
// unless WithTranslator is given.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
		version:   "dev",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Filter Summary"))
	fmt.Fprintf(&b, "- %s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	chain := t("None")
	if len(s.Settings.Filters) > 0 {
		chain = strings.Join(s.Settings.Filters, " → ")
	}
	row(&b, t("Filters"), chain)
	row(&b, t("Seed"), fmt.Sprint(s.Settings.Seed))
	row(&b, t("Channel"), channelName(s.Settings.ChannelSelector))
	row(&b, t("Output Format"), s.Settings.Format)
	row(&b, t("Quality"), fmt.Sprint(s.Settings.Quality))
	maxDim := t("Unlimited")
	if s.Settings.MaxDimension > 0 {
		maxDim = fmt.Sprintf("%d px", s.Settings.MaxDimension)
	}
	row(&b, t("Max Dimension"), maxDim)
	row(&b, t("Workers"), fmt.Sprint(s.Settings.Workers))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Results"))
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n|---|---|---|---|---|\n",
		t("Input"), t("Output"), t("Size"), t("File Size"), t("Filter Time"))
	for _, img := range s.Images {
		if img.Error != "" {
			fmt.Fprintf(&b, "| %s | %s: %s | - | - | - |\n", img.Input, t("Failed"), img.Error)
			continue
		}
		size := fmt.Sprintf("%dx%d", img.Width, img.Height)
		if img.Resized() {
			size += fmt.Sprintf(" (%s %dx%d)", t("from"), img.OriginalWidth, img.OriginalHeight)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d ms |\n",
			img.Input, img.Output, size, formatBytes(img.FileSize), img.DurationMs)
	}
	if failed := s.Failed(); failed > 0 {
		fmt.Fprintf(&b, "\n%s: %d / %d\n", t("Failed"), failed, len(s.Images))
	}
	b.WriteString("\n")

	if len(s.Filters) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Filter Timings"))
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n|---|---|---|---|\n",
			t("Filter"), t("Runs"), t("Total"), t("Average"))
		for _, ft := range s.Filters {
			fmt.Fprintf(&b, "| %s | %d | %d ms | %.1f ms |\n", ft.Filter, ft.Runs, ft.TotalMs, ft.AverageMs())
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n%s pixelfx %s\n", t("Generated by"), f.version)
	return b.String()
}

func row(b *strings.Builder, item, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", item, value)
}

func channelName(selector int) string {
	switch selector {
	case 0:
		return "R"
	case 1:
		return "G"
	default:
		return "B"
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit && exp < 2; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
