package ui

import (
	"strings"

	"github.com/spf13/cobra"
)

const helpTemplate = `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlags (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`

// CustomizeHelp installs the colored help template on cmd and its children.
func CustomizeHelp(cmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return DescStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlags", styleFlags)

	cmd.SetHelpTemplate(helpTemplate)
}

// styleFlags colors the flag names of each usage line, leaving the
// description untouched.
func styleFlags(usages string) string {
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		names, rest, found := strings.Cut(trimmed, "   ")
		if !found {
			lines[i] = indent + FlagStyle.Render(trimmed)
			continue
		}
		lines[i] = indent + FlagStyle.Render(names) + "   " + rest
	}
	return strings.Join(lines, "\n")
}
