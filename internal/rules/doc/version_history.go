package doc

import (
	"github.com/dlclark/regexp2"

	"github.com/donaldgifford/doccompress/internal/formatter"
)

const versionHistory = `^[ \t]*#region Version History[ \t]*((?>\s*//[^\n]*))*\s*#endregion[ \t]*(\r\n?|\n)+`

// VersionHistoryRule deletes a "Version History" region that holds nothing
// but comment lines, including the blank lines that follow it.
func VersionHistoryRule() *formatter.RegexRule {
	return formatter.NewDeleteRule("version_history", regexp2.MustCompile(versionHistory, options|regexp2.IgnoreCase))
}
