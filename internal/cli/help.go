package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// StyledHelpPrinter prefixes kong's default help with a styled title and
// description.
func StyledHelpPrinter(title, description string) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		w := ctx.Stdout
		fmt.Fprintln(w, TitleStyle.Render(title))
		fmt.Fprintln(w, KeyStyle.Render(description))
		fmt.Fprintln(w)

		return kong.DefaultHelpPrinter(options, ctx)
	}
}
