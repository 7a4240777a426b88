package daynames

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hospital/turns-service/internal/domain"
)

// Locale код языка названий дней
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// ErrUnsupportedLocale локаль не поддерживается
var ErrUnsupportedLocale = errors.New("daynames: unsupported locale")

var dictionaries = map[Locale]map[domain.CanonicalDay]string{
	LocaleES: {
		domain.Sunday:    "domingo",
		domain.Monday:    "lunes",
		domain.Tuesday:   "martes",
		domain.Wednesday: "miércoles",
		domain.Thursday:  "jueves",
		domain.Friday:    "viernes",
		domain.Saturday:  "sábado",
	},
	LocaleEN: {
		domain.Sunday:    "sunday",
		domain.Monday:    "monday",
		domain.Tuesday:   "tuesday",
		domain.Wednesday: "wednesday",
		domain.Thursday:  "thursday",
		domain.Friday:    "friday",
		domain.Saturday:  "saturday",
	},
}

// Translator двусторонний перевод между названиями дней локали и CanonicalDay.
// Сопоставление полное: неизвестное название - ошибка, пустая строка не возвращается никогда.
// Безопасен для конкурентного использования: после создания только читается.
type Translator struct {
	locale Locale
	tag    language.Tag
	names  map[domain.CanonicalDay]string
	lookup map[string]domain.CanonicalDay
}

// New создает переводчик для локали ("es", "es-AR", "en", "en-US" ...)
func New(locale string) (*Translator, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	base, _ := tag.Base()

	names, ok := dictionaries[Locale(base.String())]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	lookup := make(map[string]domain.CanonicalDay, len(names))
	for day, name := range names {
		lookup[normalize(name)] = day
	}

	return &Translator{
		locale: Locale(base.String()),
		tag:    tag,
		names:  names,
		lookup: lookup,
	}, nil
}

// Locale возвращает базовый язык переводчика
func (t *Translator) Locale() Locale {
	return t.locale
}

// ToCanonical переводит название дня локали в CanonicalDay.
// Регистр и диакритика не учитываются: "Miércoles", "MIERCOLES" и "miercoles" равнозначны.
func (t *Translator) ToCanonical(name string) (domain.CanonicalDay, error) {
	day, ok := t.lookup[normalize(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q in locale %s", domain.ErrUnknownDay, name, t.locale)
	}
	return day, nil
}

// FromCanonical переводит CanonicalDay в название дня локали (в нижнем регистре)
func (t *Translator) FromCanonical(day domain.CanonicalDay) (string, error) {
	name, ok := t.names[day]
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownDay, int(day))
	}
	return name, nil
}

// Display название дня для показа пользователю ("Miércoles")
func (t *Translator) Display(day domain.CanonicalDay) (string, error) {
	name, err := t.FromCanonical(day)
	if err != nil {
		return "", err
	}
	return cases.Title(t.tag).String(name), nil
}

// DayName название дня недели даты для показа пользователю
func (t *Translator) DayName(date time.Time) string {
	// CanonicalDayOf всегда в диапазоне словаря
	name, _ := t.Display(domain.CanonicalDayOf(date))
	return name
}

// normalize приводит строку к ключу поиска: без пробелов по краям, без диакритики, casefold
func normalize(s string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, strings.TrimSpace(s))
	if err != nil {
		stripped = strings.TrimSpace(s)
	}
	return cases.Fold().String(stripped)
}
