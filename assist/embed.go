// Package assist provides the canned "AI" features: a deterministic
// keyword-routed chat responder and party-template generation. There is no
// model behind it — every answer is a static lookup, which is exactly the
// claim this package makes.
package assist

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/festaperfeita/festa/internal/types"
)

// Version is incremented whenever the canned content changes incompatibly.
const Version = "v1"

// contentFS holds the embedded template assets, one directory per party
// theme plus a generic fallback.
//
//go:embed content
var contentFS embed.FS

// Generate returns the canned template content for the given party theme
// and template type. An empty party type defaults to natal; themes without
// dedicated content fall back to the generic set.
func Generate(partyType types.PartyType, tt types.TemplateType) (string, error) {
	if !types.ValidTemplateType(tt) {
		return "", fmt.Errorf("unknown template type %q", tt)
	}
	if partyType == "" {
		partyType = types.PartyNatal
	}

	name := string(tt) + ".md"
	b, err := fs.ReadFile(contentFS, path.Join("content", string(partyType), name))
	if err != nil {
		b, err = fs.ReadFile(contentFS, path.Join("content", "generic", name))
		if err != nil {
			return "", fmt.Errorf("missing content for %s/%s: %w", partyType, tt, err)
		}
	}
	return string(b), nil
}

// Themes returns the party themes with dedicated content directories.
func Themes() ([]types.PartyType, error) {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return nil, err
	}
	var out []types.PartyType
	for _, e := range entries {
		if e.IsDir() && e.Name() != "generic" {
			out = append(out, types.PartyType(e.Name()))
		}
	}
	return out, nil
}
