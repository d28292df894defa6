package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dialogkit/closedby/host"
)

// ---------------------------------------------------------------------------
// Dialog scenario definitions (TOML-based)
// ---------------------------------------------------------------------------

// Element declares one host element. Elements are instantiated in file
// order, so parents and shadow hosts must be declared before their content.
type Element struct {
	ID       string  `toml:"id"`
	Tag      string  `toml:"tag"`
	Parent   string  `toml:"parent"`    // id of the parent element; empty means document top level
	ShadowOf string  `toml:"shadow_of"` // id of the element whose shadow root receives this element
	ClosedBy *string `toml:"closedby"`  // declared closedby value; absent means unconfigured
	Open     bool    `toml:"open"`      // open the dialog modally once the tree is built
}

// Scenario is the top-level TOML structure: a declarative dialog tree.
type Scenario struct {
	Name     string    `toml:"name"`
	Elements []Element `toml:"element"`
}

// Load reads a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes and validates a scenario document.
func Parse(data string) (Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) validate() error {
	seen := make(map[string]Element, len(s.Elements))
	for _, el := range s.Elements {
		if el.ID == "" {
			return fmt.Errorf("scenario %q: element without id", s.Name)
		}
		if _, dup := seen[el.ID]; dup {
			return fmt.Errorf("scenario %q: duplicate element id %q", s.Name, el.ID)
		}
		if el.Parent != "" && el.ShadowOf != "" {
			return fmt.Errorf("element %q: parent and shadow_of are mutually exclusive", el.ID)
		}
		for _, ref := range []string{el.Parent, el.ShadowOf} {
			if ref == "" {
				continue
			}
			if _, ok := seen[ref]; !ok {
				return fmt.Errorf("element %q: unknown reference %q (declare parents first)", el.ID, ref)
			}
		}
		if (el.Open || el.ClosedBy != nil) && el.Tag != host.DialogTag {
			return fmt.Errorf("element %q: open/closedby require tag %q", el.ID, host.DialogTag)
		}
		seen[el.ID] = el
	}
	return nil
}

// Build instantiates the scenario into the document and returns the elements
// by id. Dialogs marked open are opened modally after the whole tree is in
// place, in declaration order.
func (s Scenario) Build(doc *host.Document) (map[string]*host.Element, error) {
	built := make(map[string]*host.Element, len(s.Elements))
	for _, decl := range s.Elements {
		tag := decl.Tag
		if tag == "" {
			tag = "div"
		}
		el := host.NewElement(tag).SetID(decl.ID)
		if decl.ClosedBy != nil {
			el.SetClosedByAttr(*decl.ClosedBy)
		}
		switch {
		case decl.ShadowOf != "":
			built[decl.ShadowOf].AttachShadow().Append(el)
		case decl.Parent != "":
			built[decl.Parent].Append(el)
		default:
			doc.Append(el)
		}
		built[decl.ID] = el
	}
	for _, decl := range s.Elements {
		if !decl.Open {
			continue
		}
		if err := built[decl.ID].ShowModal(); err != nil {
			return nil, fmt.Errorf("open dialog %q: %w", decl.ID, err)
		}
	}
	return built, nil
}

// Default is the built-in scenario the demo falls back to when no scenario
// file is configured: three nested containers, three closed dialogs covering
// every policy, and a shadow-hosted dialog.
const Default = `name = "default"

[[element]]
id = "main"
tag = "section"

[[element]]
id = "confirm"
tag = "dialog"
parent = "main"
closedby = "any"

[[element]]
id = "settings"
tag = "dialog"
parent = "main"
closedby = "closerequest"

[[element]]
id = "wizard"
tag = "dialog"
parent = "main"
closedby = "none"

[[element]]
id = "panel"
tag = "section"
parent = "main"

[[element]]
id = "embedded"
tag = "dialog"
shadow_of = "panel"
closedby = "any"
`
