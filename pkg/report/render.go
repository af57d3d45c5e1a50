package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/packs"
	"github.com/arthur-debert/mcpack/pkg/pipeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// PackSummary is one compiled pack as shown in the summary
type PackSummary struct {
	packs.Manifest `yaml:",inline"`
	Artifact       string `json:"artifact" yaml:"artifact"`
	Checksum       string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
}

// Summary is the rendered view of a run
type Summary struct {
	Packs []PackSummary `json:"packs" yaml:"packs"`
}

// Summarize pairs every manifest of result with its artifact
func Summarize(result *pipeline.Result) Summary {
	s := Summary{Packs: []PackSummary{}}
	if result == nil {
		return s
	}
	for i, m := range result.Packs {
		entry := PackSummary{Manifest: m}
		if i < len(result.Artifacts) {
			entry.Artifact = result.Artifacts[i]
		}
		if i < len(result.Checksums) {
			entry.Checksum = result.Checksums[i]
		}
		s.Packs = append(s.Packs, entry)
	}
	return s
}

// Render writes the summary of result to w. Text output is styled with
// profile; termenv.Ascii yields plain text.
func Render(w io.Writer, format Format, profile termenv.Profile, result *pipeline.Result) error {
	summary := Summarize(result)

	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(summary)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(summary)
		if err == nil {
			err = enc.Close()
		}
	default:
		_, err = io.WriteString(w, renderText(summary, profile))
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "cannot write summary").
			WithDetail("format", format.String())
	}
	return nil
}

func renderText(summary Summary, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	st := newStyles(r)

	var b strings.Builder
	if len(summary.Packs) == 0 {
		b.WriteString(st.warning.Render("No packs found"))
		b.WriteString("\n")
		return b.String()
	}

	noun := "packs"
	if len(summary.Packs) == 1 {
		noun = "pack"
	}
	b.WriteString(st.title.Render(fmt.Sprintf("Compiled %d %s", len(summary.Packs), noun)))
	b.WriteString("\n")

	for _, p := range summary.Packs {
		kind := "unknown"
		if p.Type.Known() {
			kind = fmt.Sprintf("%s (%s)", p.Type, p.Abbr)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			st.success.Render("✓"),
			st.name.Render(p.Name),
			st.muted.Render(p.Version+" "+kind),
			st.path.Render(p.Artifact),
		))
	}
	return b.String()
}
