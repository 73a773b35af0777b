package sld

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/sld/style"
)

// InternationalString is a text with optional translations.
type InternationalString struct {
	text         string
	translations map[language.Tag]string
}

// NewInternationalString returns a text without translations.
func NewInternationalString(text string) *InternationalString {
	return &InternationalString{text: text}
}

// CastInternationalString returns s as an *InternationalString, copying
// foreign implementations.
func CastInternationalString(s style.InternationalString) *InternationalString {
	switch x := s.(type) {
	case nil:
		return nil
	case *InternationalString:
		return x
	}
	c := &InternationalString{text: s.String()}
	for tag, text := range s.Translations() {
		c.SetTranslation(tag, text)
	}
	return c
}

// String returns the default text.
func (s *InternationalString) String() string {
	if s == nil {
		return ""
	}
	return s.text
}

// SetText replaces the default text.
func (s *InternationalString) SetText(text string) { s.text = text }

// Translations returns a copy of the localised variants.
func (s *InternationalString) Translations() map[language.Tag]string {
	return maps.Clone(s.translations)
}

// SetTranslation stores the text for tag. An empty text removes it.
func (s *InternationalString) SetTranslation(tag language.Tag, text string) {
	if text == "" {
		delete(s.translations, tag)
		return
	}
	if s.translations == nil {
		s.translations = make(map[language.Tag]string)
	}
	s.translations[tag] = text
}

// Lookup returns the translation best matching the preferred languages,
// falling back to the default text.
func (s *InternationalString) Lookup(preferred ...language.Tag) string {
	if s == nil {
		return ""
	}
	if len(s.translations) == 0 || len(preferred) == 0 {
		return s.text
	}
	// The first supported tag is the matcher's fallback, so it stands for
	// the default text.
	supported := []language.Tag{language.Und}
	keys := slices.SortedFunc(maps.Keys(s.translations), func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	supported = append(supported, keys...)
	_, i, conf := language.NewMatcher(supported).Match(preferred...)
	if i == 0 || conf == language.No {
		return s.text
	}
	return s.translations[supported[i]]
}

// Equal reports whether other is an *InternationalString with the same
// text and translations.
func (s *InternationalString) Equal(other style.InternationalString) bool {
	o, ok := other.(*InternationalString)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	return s.text == o.text && maps.Equal(s.translations, o.translations)
}

// Hash returns a hash consistent with Equal.
func (s *InternationalString) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := newHasher("istring").str(s.text)
	var sum uint64
	for tag, text := range s.translations {
		sum += newHasher(tag.String()).str(text).sum()
	}
	return h.add(sum).sum()
}

// Clone returns a copy of s.
func (s *InternationalString) Clone() *InternationalString {
	if s == nil {
		return nil
	}
	return &InternationalString{text: s.text, translations: maps.Clone(s.translations)}
}

// Description is the human readable title and abstract of a style
// element.
type Description struct {
	title    *InternationalString
	abstract *InternationalString
}

// NewDescription returns a description with untranslated texts. Empty
// strings leave the field unset.
func NewDescription(title, abstract string) *Description {
	d := &Description{}
	if title != "" {
		d.title = NewInternationalString(title)
	}
	if abstract != "" {
		d.abstract = NewInternationalString(abstract)
	}
	return d
}

// CastDescription returns d as a *Description, copying foreign
// implementations.
func CastDescription(d style.Description) *Description {
	switch x := d.(type) {
	case nil:
		return nil
	case *Description:
		return x
	}
	return &Description{
		title:    CastInternationalString(d.Title()),
		abstract: CastInternationalString(d.Abstract()),
	}
}

func (d *Description) Title() style.InternationalString {
	return ifaceOf[style.InternationalString](d.title)
}

func (d *Description) Abstract() style.InternationalString {
	return ifaceOf[style.InternationalString](d.abstract)
}

func (d *Description) SetTitle(s style.InternationalString) { d.title = CastInternationalString(s) }

func (d *Description) SetAbstract(s style.InternationalString) {
	d.abstract = CastInternationalString(s)
}

func (d *Description) Equal(other style.Description) bool {
	o, ok := other.(*Description)
	if !ok || d == nil || o == nil {
		return ok && d == nil && o == nil
	}
	return d.title.Equal(o.title) && d.abstract.Equal(o.abstract)
}

func (d *Description) Hash() uint64 {
	if d == nil {
		return 0
	}
	return newHasher("description").add(d.title.Hash()).add(d.abstract.Hash()).sum()
}

func (d *Description) Clone() *Description {
	if d == nil {
		return nil
	}
	return &Description{title: d.title.Clone(), abstract: d.abstract.Clone()}
}

func (d *Description) Accept(v Visitor) { v.VisitDescription(d) }

func (d *Description) AcceptData(v DataVisitor, data any) any {
	return v.VisitDescription(d, data)
}
