package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestTableAlignment(t *testing.T) {
	tab := Table{Headers: []string{"Bin", "Hz", "Mag"}}
	tab.AddRow("1", "50.0", "0.5000")
	tab.AddRow("12", "600.0", "0.0100")

	want := "" +
		"Bin     Hz     Mag\n" +
		"1     50.0  0.5000\n" +
		"12   600.0  0.0100\n"

	if got := tab.String(); got != want {
		t.Fatalf("table:\n%q\nwant:\n%q", got, want)
	}
}

func TestTableRaggedRows(t *testing.T) {
	tab := Table{}
	tab.AddRow("a")
	tab.AddRow("bb", "1", "22")

	want := "a\n" +
		"bb  1  22\n"

	if got := tab.String(); got != want {
		t.Fatalf("table:\n%q\nwant:\n%q", got, want)
	}

	if (&Table{}).String() != "" {
		t.Fatal("empty table should render empty")
	}
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer

	PrintKeyValue(&buf, "SNR", "42.0 dB")
	PrintWarning(&buf, "aliasing")
	PrintError(&buf, "boom")

	out := buf.String()
	for _, want := range []string{"SNR: 42.0 dB", "Warning: aliasing", "Error: boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q lacks %q", out, want)
		}
	}
}
