package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feaser/openblt-go/pkg/openblt"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	boundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type symbolReport struct {
	Name  string `json:"name"`
	Bound bool   `json:"bound"`
}

// report is what the command prints. Empty values mean the export is absent
// or its call failed; Errors says which.
type report struct {
	Wrapper       string         `json:"wrapper"`
	Library       string         `json:"library"`
	VersionNumber *uint32        `json:"version_number,omitempty"`
	VersionString string         `json:"version_string,omitempty"`
	Symbols       []symbolReport `json:"symbols"`
	Errors        []string       `json:"errors,omitempty"`
}

// versionSource is the part of *openblt.Library the report needs.
type versionSource interface {
	Name() string
	Symbols() []openblt.SymbolStatus
	VersionGetNumberFunc() (func() (uint32, error), bool)
	VersionGetStringFunc() (func() (string, error), bool)
}

func collect(src versionSource) report {
	rep := report{
		Wrapper: openblt.WrapperVersion(),
		Library: src.Name(),
	}

	for _, st := range src.Symbols() {
		rep.Symbols = append(rep.Symbols, symbolReport{Name: st.Name, Bound: st.Bound})
	}

	if fn, ok := src.VersionGetNumberFunc(); ok {
		n, err := fn()
		if err != nil {
			rep.Errors = append(rep.Errors, err.Error())
		} else {
			rep.VersionNumber = &n
		}
	}
	if fn, ok := src.VersionGetStringFunc(); ok {
		s, err := fn()
		if err != nil {
			rep.Errors = append(rep.Errors, err.Error())
		} else {
			rep.VersionString = s
		}
	}
	return rep
}

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writePlain(w io.Writer, rep report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "openblt-go: %s\n", rep.Wrapper)
	fmt.Fprintf(&b, "library: %s\n", rep.Library)
	if rep.VersionNumber != nil {
		fmt.Fprintf(&b, "version number: %d\n", *rep.VersionNumber)
	}
	if rep.VersionString != "" {
		fmt.Fprintf(&b, "version string: %s\n", rep.VersionString)
	}
	for _, s := range rep.Symbols {
		state := "absent"
		if s.Bound {
			state = "bound"
		}
		fmt.Fprintf(&b, "symbol %s: %s\n", s.Name, state)
	}
	for _, e := range rep.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeStyled(w io.Writer, rep report) error {
	lines := []string{
		titleStyle.Render("LibOpenBLT"),
		labelStyle.Render("wrapper ") + rep.Wrapper,
		labelStyle.Render("library ") + rep.Library,
	}
	if rep.VersionNumber != nil {
		lines = append(lines, labelStyle.Render("number  ")+fmt.Sprint(*rep.VersionNumber))
	}
	if rep.VersionString != "" {
		lines = append(lines, labelStyle.Render("string  ")+rep.VersionString)
	}
	for _, s := range rep.Symbols {
		if s.Bound {
			lines = append(lines, boundStyle.Render("✓ "+s.Name))
		} else {
			lines = append(lines, absentStyle.Render("- "+s.Name))
		}
	}
	for _, e := range rep.Errors {
		lines = append(lines, errorStyle.Render(e))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}
