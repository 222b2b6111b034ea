package components

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet describes a semantic colour slot:
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that "pops" against Base
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// VariantRegistry maps Semantic class tokens to their styling strategies.
type VariantRegistry struct {
	strategies map[string]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[string]StyleStrategy),
	}
}

// Register adds a token-to-strategy mapping.
func (vr *VariantRegistry) Register(token string, funcs ...StyleFunc) {
	vr.strategies[token] = NewCompositeStrategy(funcs...)
}

// Get retrieves the strategy for a token, or nil if not found.
func (vr *VariantRegistry) Get(token string) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[token]
}

// Tokens lists the registered class tokens in sorted order.
func (vr *VariantRegistry) Tokens() []string {
	if vr == nil {
		return nil
	}
	tokens := make([]string, 0, len(vr.strategies))
	for token := range vr.strategies {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Variants *VariantRegistry
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#2185d0", "#54c8ff"),
			OnBase:   ac("#ffffff", "#0b1120"),
			Muted:    ac("#1678c2", "#1d4ed8"),
			Contrast: ac("#fbbd08", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#1b1c1d", "#545454"),
			OnBase:   ac("#ffffff", "#f9fafb"),
			Muted:    ac("#27292a", "#3f3f46"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#2185d0", "#54c8ff"),
		},
		Success: ColourSet{
			Base:     ac("#21ba45", "#2ecc40"),
			OnBase:   ac("#ffffff", "#022c22"),
			Muted:    ac("#16ab39", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#f2711c", "#ff851b"),
			OnBase:   ac("#ffffff", "#1c1917"),
			Muted:    ac("#f26202", "#c2410c"),
			Contrast: ac("#1f2937", "#1f2937"),
		},
		Danger: ColourSet{
			Base:     ac("#db2828", "#ff695e"),
			OnBase:   ac("#ffffff", "#2b0a0a"),
			Muted:    ac("#d01919", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#00b5ad", "#6dffff"),
			OnBase:   ac("#ffffff", "#082f49"),
			Muted:    ac("#009c95", "#0e7490"),
			Contrast: ac("#1f2937", "#1f2937"),
		},
		Neutral: ColourSet{
			Base:     ac("#e8e8e8", "#374151"),
			OnBase:   ac("#1b1c1d", "#e5e7eb"),
			Muted:    ac("#a0a0a0", "#6b7280"),
			Contrast: ac("#1b1c1d", "#f9fafb"),
		},
	}

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Variants: NewVariantRegistry(),
	}
	registerDropdownVariants(theme.Variants)
	registerButtonVariants(theme.Variants)
	return theme
}

func registerDropdownVariants(registry *VariantRegistry) {
	registry.Register("dropdown", RoundedBorder(PaletteNeutral), PaddingX(1))
	registry.Register("menu", RoundedBorder(PaletteNeutral))
	registry.Register("item", PaddingX(1))
	registry.Register("label", Background(PaletteNeutral), PaddingX(1))

	registry.Register("active", Bold())
	registry.Register("selected", Background(PalettePrimary))
	registry.Register("disabled", Faint())
	registry.Register("error", Foreground(PaletteDanger), BorderColour(PaletteDanger))
	registry.Register("loading", Italic())
	registry.Register("default", Faint())
	registry.Register("filtered", Faint())
	registry.Register("addition", Italic(), Foreground(PaletteSuccess))
	registry.Register("message", Faint(), Italic())
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register("button", PaddingX(2))
	registry.Register("primary", Background(PalettePrimary))
	registry.Register("secondary", Background(PaletteSecondary))
	registry.Register("positive", Background(PaletteSuccess))
	registry.Register("negative", Background(PaletteDanger))
	registry.Register("red", Background(PaletteDanger))
	registry.Register("green", Background(PaletteSuccess))
	registry.Register("orange", Background(PaletteWarning))
	registry.Register("teal", Background(PaletteInfo))
	registry.Register("basic", Foreground(PalettePrimary), ClearBackground())
}

// ClassStyle folds the style of every token of a Semantic class string, in
// token order. Later tokens override earlier ones; unknown tokens are ignored.
func ClassStyle(classes string, theme Theme) lipgloss.Style {
	return applyClasses(lipgloss.NewStyle(), classes, theme)
}

func applyClasses(style lipgloss.Style, classes string, theme Theme) lipgloss.Style {
	for _, token := range strings.Fields(classes) {
		if strategy := theme.Variants.Get(token); strategy != nil {
			style = strategy.Apply(style, theme)
		}
	}
	return style
}

// HasClass reports whether classes contains token.
func HasClass(classes, token string) bool {
	for _, candidate := range strings.Fields(classes) {
		if candidate == token {
			return true
		}
	}
	return false
}

// Background applies a semantic background colour and matching foreground for optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// ClearBackground removes any background set by earlier tokens.
func ClearBackground() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.UnsetBackground()
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// RoundedBorder draws the theme's rounded border in the muted tone of slot.
func RoundedBorder(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if _, ok := base.GetBorderTopForeground().(lipgloss.NoColor); !ok {
			return base.Border(theme.Borders.Rounded)
		}
		return base.Border(theme.Borders.Rounded).BorderForeground(slot(theme.Palette).Muted)
	}
}

// BorderColour colours the border with the base tone of slot.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// PaddingX pads both horizontal sides by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) }
}

func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) }
}

func Italic() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Italic(true) }
}
