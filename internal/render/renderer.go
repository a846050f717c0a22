// Package render turns resolved sheet actions into the HTML chat records
// stored in a subject's chat log.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"

	"github.com/KirkDiggler/godbound-api/internal/engine/check"
	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Template names
const (
	TemplateAttributeCheck = "attribute-check"
	TemplateSavingThrow    = "saving-throw"
	TemplateMoraleCheck    = "morale-check"
	TemplatePower          = "power"
)

// CSS classes marking the outcome line
const (
	ClassSuccess = "result-msg-success"
	ClassFailure = "result-msg-failure"
)

// Renderer renders chat records. Safe for concurrent use.
type Renderer struct {
	templates *template.Template
	markdown  goldmark.Markdown
}

// Config holds optional renderer settings
type Config struct {
	// Markdown converts item descriptions. Defaults to goldmark.New(), which
	// drops raw HTML from descriptions.
	Markdown goldmark.Markdown
}

// New parses the embedded templates
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	md := cfg.Markdown
	if md == nil {
		md = goldmark.New()
	}

	tmpl, err := template.New("chat").
		Funcs(template.FuncMap{"signed": signed}).
		ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse chat templates")
	}

	return &Renderer{templates: tmpl, markdown: md}, nil
}

type checkView struct {
	Title              string
	Details            string
	Formula            string
	Natural            int
	DifficultyModifier int
	AuxiliaryModifier  int
	Total              int
	Target             int
	ClassName          string
	Outcome            string
}

type moraleView struct {
	Title     string
	Formula   string
	Dice      []int
	Total     int
	Target    int
	ClassName string
	Outcome   string
}

type itemView struct {
	Name        string
	ItemType    godbound.ItemType
	Title       string
	EffortCost  int
	Description template.HTML
}

// RenderCheck renders an attribute check or saving throw using the template
// named by its kind
func (r *Renderer) RenderCheck(result *check.Result) (string, error) {
	if result == nil {
		return "", errors.InvalidArgument("result is required")
	}

	var title string
	switch result.Kind {
	case check.KindAttributeCheck:
		title = "Attribute Check"
	case check.KindSavingThrow:
		title = "Saving Throw"
	default:
		return "", errors.InvalidArgumentf("no template for %q", result.Kind)
	}

	view := checkView{
		Title:              title,
		Details:            Details(result.Category, result.DifficultyLabel),
		Formula:            result.Formula,
		Natural:            result.Natural,
		DifficultyModifier: result.DifficultyModifier,
		AuxiliaryModifier:  result.AuxiliaryModifier,
		Total:              result.Total,
		Target:             result.Target,
		ClassName:          OutcomeClass(result.Succeeded),
		Outcome:            outcome(result.Succeeded, "Success", "Failure"),
	}

	return r.execute(string(result.Kind), view)
}

// RenderMorale renders a morale check
func (r *Renderer) RenderMorale(result *check.MoraleResult) (string, error) {
	if result == nil {
		return "", errors.InvalidArgument("result is required")
	}

	view := moraleView{
		Title:     "Morale Check",
		Formula:   result.Formula,
		Dice:      result.Dice,
		Total:     result.Total,
		Target:    result.Morale,
		ClassName: OutcomeClass(result.Holds),
		Outcome:   outcome(result.Holds, "Holds", "Breaks"),
	}

	return r.execute(TemplateMoraleCheck, view)
}

// RenderItem renders a demonstrated power or chosen tactic. The item's
// description is markdown.
func (r *Renderer) RenderItem(item *godbound.Item) (string, error) {
	if item == nil {
		return "", errors.InvalidArgument("item is required")
	}

	description, err := r.Markdown(item.Description)
	if err != nil {
		return "", err
	}

	view := itemView{
		Name:        item.Name,
		ItemType:    item.Type,
		Title:       Capitalize(string(item.Type)),
		EffortCost:  item.EffortCost,
		Description: description,
	}

	return r.execute(TemplatePower, view)
}

// Markdown converts source to HTML
func (r *Renderer) Markdown(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "failed to convert markdown")
	}
	// goldmark escapes raw HTML unless configured with html.WithUnsafe
	return template.HTML(buf.String()), nil //nolint:gosec
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}
	return buf.String(), nil
}

// Details formats the "Strength - Very hard" line of a roll card
func Details(category, label string) string {
	return fmt.Sprintf("%s - %s", Capitalize(category), Capitalize(label))
}

// OutcomeClass returns the CSS class for the outcome line
func OutcomeClass(succeeded bool) string {
	if succeeded {
		return ClassSuccess
	}
	return ClassFailure
}

// Capitalize upper-cases the first letter only
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func outcome(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func signed(v int) string {
	return fmt.Sprintf("%+d", v)
}
