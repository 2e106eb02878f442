// Package fonts resolves the dashboard's monospace font once at process
// start and holds it for the process lifetime. The resolved face backs the
// --font-geist-mono style token referenced by the layout shell.
package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	u "dataanalyzer/internal/utils"
)

// woff2Magic is the four-byte signature of a WOFF2 font file.
var woff2Magic = []byte("wOF2")

// weights maps the two required weights to their conventional style names
// in the font distribution.
var weights = map[int]string{
	400: "Regular",
	700: "Bold",
}

// latinRange restricts the face to the latin subset.
const latinRange = "U+0000-00FF, U+0131, U+0152-0153, U+02BB-02BC, U+02C6, U+02DA, U+02DC, U+2000-206F, U+2074, U+20AC, U+2122, U+2191, U+2193, U+2212, U+2215, U+FEFF, U+FFFD"

// Variable is the CSS custom property under which the face is exposed.
const Variable = "--font-geist-mono"

// Face is a resolved font family: the fetched files plus the generated
// stylesheet. Immutable after Resolve returns.
type Face struct {
	Family string
	Subset string

	files map[string][]byte

	cssOnce sync.Once
	css     string
}

// Resolve fetches every required weight of the configured family from the
// font source. It is called once at startup; any failure means the process
// must not serve, there is no fallback face.
func Resolve(ctx context.Context, cfg u.Config) (*Face, error) {
	base := strings.TrimRight(cfg.Fonts.SourceURL, "/")
	if base == "" {
		return nil, fmt.Errorf("font source url is empty")
	}

	timeout := time.Duration(cfg.Fonts.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	face := &Face{
		Family: cfg.Fonts.Family,
		Subset: cfg.Fonts.Subset,
		files:  make(map[string][]byte, len(weights)),
	}
	if face.Family == "" {
		return nil, fmt.Errorf("font family is empty")
	}

	for weight, style := range weights {
		name := fileName(face.Family, style)
		data, err := fetch(ctx, client, base+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s weight %d: %w", face.Family, weight, err)
		}
		face.files[name] = data
		u.Debug("Font weight resolved", "family", face.Family, "weight", weight, "bytes", len(data))
	}

	u.Info("Font face resolved", "family", face.Family, "subset", face.Subset, "weights", len(face.files))
	return face, nil
}

func fileName(family, style string) string {
	return strings.ReplaceAll(family, " ", "") + "-" + style + ".woff2"
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) < len(woff2Magic) || string(data[:len(woff2Magic)]) != string(woff2Magic) {
		return nil, fmt.Errorf("%s is not a woff2 file", url)
	}
	return data, nil
}

// FaceFromFiles is a small helper intended for tests and local debugging.
// It builds a Face directly from in-memory file contents, bypassing the
// network resolution step.
func FaceFromFiles(family, subset string, files map[string][]byte) *Face {
	copied := make(map[string][]byte, len(files))
	for name, data := range files {
		copied[name] = data
	}
	return &Face{Family: family, Subset: subset, files: copied}
}

// File returns the bytes for one resolved font file.
func (f *Face) File(name string) ([]byte, bool) {
	data, ok := f.files[name]
	return data, ok
}

// Files lists the resolved file names in stable order.
func (f *Face) Files() []string {
	names := make([]string, 0, len(f.files))
	for name := range f.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CSS returns the @font-face rules and the style token binding. The result
// is generated once and reused for every request.
func (f *Face) CSS() string {
	f.cssOnce.Do(func() {
		var b strings.Builder
		for _, weight := range []int{400, 700} {
			name := fileName(f.Family, weights[weight])
			fmt.Fprintf(&b, "@font-face {\n")
			fmt.Fprintf(&b, "  font-family: %q;\n", f.Family)
			fmt.Fprintf(&b, "  font-style: normal;\n")
			fmt.Fprintf(&b, "  font-weight: %d;\n", weight)
			fmt.Fprintf(&b, "  font-display: swap;\n")
			fmt.Fprintf(&b, "  src: url(/assets/fonts/%s) format(\"woff2\");\n", name)
			if f.Subset == "latin" {
				fmt.Fprintf(&b, "  unicode-range: %s;\n", latinRange)
			}
			fmt.Fprintf(&b, "}\n")
		}
		fmt.Fprintf(&b, ":root {\n  %s: %q, ui-monospace, monospace;\n}\n", Variable, f.Family)
		b.WriteString(".font-mono {\n  font-family: var(" + Variable + ");\n}\n")
		b.WriteString(".antialiased {\n  -webkit-font-smoothing: antialiased;\n  -moz-osx-font-smoothing: grayscale;\n}\n")
		f.css = b.String()
	})
	return f.css
}
