package doc

import "github.com/donaldgifford/doccompress/internal/formatter"

const regionMarker = `^[ \t]*(#region\b[^\r\n]*|#endregion\b[^\r\n]*)(\r?\n|\Z)`

// RegionRule deletes #region and #endregion lines together with their
// line terminator. The content between them stays in place.
func RegionRule() *formatter.RegexRule {
	return formatter.NewDeleteRule("region_markers", compile(regionMarker))
}
