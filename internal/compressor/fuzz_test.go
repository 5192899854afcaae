package compressor_test

import (
	"strings"
	"testing"

	"github.com/donaldgifford/doccompress/internal/compressor"
)

func FuzzCompress(f *testing.F) {
	seeds := []string{
		showcaseInput,
		"",
		"\n",
		"int i;\r\n",
		"{\n\n}\n",
		"#region A\n#endregion\n",
		"    /// <summary>\n    /// a\n    /// </summary>\n",
		"    /// <param name=\"a\">x y z</param>\n",
		"    /// <revision>\n    /// </revision>\n",
		"\n\n    ////////\n\n",
		"a;\n\n////////\n\n////////\n\nb;\n",
		"    /// <revision/>\n    int i;\n    /// x </revision>\n",
		"var s = \"plain text, no markup\";\n",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	c := compressor.New(testConfig())
	f.Fuzz(func(t *testing.T, input string) {
		// Compress must accept any input.
		out := c.Compress(input)

		if again := c.Compress(out); again != out {
			t.Errorf("second pass changed output:\nonce: %q\ntwice: %q", out, again)
		}

		// Without these characters no rule can match.
		if !strings.ContainsAny(input, "/#{}") && out != input {
			t.Errorf("text without markup changed:\n in: %q\nout: %q", input, out)
		}
	})
}
