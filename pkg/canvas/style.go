package canvas

// Style describes the visual appearance of a node or container.
type Style struct {
	BorderColor  string `yaml:"border_color,omitempty" toml:"border_color"`
	FillColor    string `yaml:"fill_color,omitempty" toml:"fill_color"`
	TextColor    string `yaml:"text_color,omitempty" toml:"text_color"`
	LabelColor   string `yaml:"label_color,omitempty" toml:"label_color"`
	Icon         string `yaml:"icon,omitempty" toml:"icon"`
	CornerRadius int    `yaml:"corner_radius,omitempty" toml:"corner_radius"`
}

// DefaultBackground is the canvas background color when none is declared.
const DefaultBackground = "#11111b"

const (
	defaultFill = "#1e1e2e"
	defaultText = "#cdd6f4"
)

// defaultStyles maps node types to their built-in appearance. The table is
// never mutated at runtime; per-node overrides go through Node.Style.
var defaultStyles = map[string]Style{
	"static":   {BorderColor: "#4CAF50", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"input":    {BorderColor: "#2196F3", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"ai":       {BorderColor: "#9C27B0", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"source":   {BorderColor: "#FF9800", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"output":   {BorderColor: "#FFC107", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"decision": {BorderColor: "#F44336", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"process":  {BorderColor: "#00BCD4", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
	"default":  {BorderColor: "#999", FillColor: defaultFill, TextColor: defaultText, CornerRadius: 12},
}

// StyleFor returns the built-in style for a node type. Unknown types get
// the "default" style.
func StyleFor(nodeType string) Style {
	if s, ok := defaultStyles[nodeType]; ok {
		return s
	}
	return defaultStyles["default"]
}

// NodeTypes returns the node types with built-in styles, in no particular order.
func NodeTypes() []string {
	types := make([]string, 0, len(defaultStyles))
	for t := range defaultStyles {
		types = append(types, t)
	}
	return types
}
