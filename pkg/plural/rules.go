// Package plural selects numerus forms. Rules follow the numerus ordering Qt
// Linguist uses for each language, so form i of a rule is the i-th
// <numerusform> of a TS message.
package plural

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Rule is the plural rule of one language
type Rule struct {
	// Forms is the number of numerus forms a translation carries
	Forms int
	// Expr is the C expression the formula was compiled from
	Expr    string
	Formula Formula
}

// Index returns the numerus form to use for count n, always within [0, Forms)
func (r Rule) Index(n int) int {
	i := r.Formula(n)
	if i < 0 {
		return 0
	}
	if i >= r.Forms {
		return r.Forms - 1
	}
	return i
}

// String returns the rule as a gettext Plural-Forms header
func (r Rule) String() string {
	return fmt.Sprintf("nplurals=%d; plural=%s;", r.Forms, r.Expr)
}

const (
	singleForm  = "nplurals=1; plural=0;"
	englishForm = "nplurals=2; plural=n != 1;"
	frenchForm  = "nplurals=2; plural=n > 1;"
	russianForm = "nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2;"
	slovakForm  = "nplurals=3; plural=n==1 ? 0 : n>=2 && n<=4 ? 1 : 2;"
	polishForm  = "nplurals=3; plural=n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2;"
	irishForm   = "nplurals=3; plural=n==1 ? 0 : n==2 ? 1 : 2;"
	latvianForm = "nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2;"
	lithuanian  = "nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2;"
	romanian    = "nplurals=3; plural=n==1 ? 0 : n==0 || (n%100>=1 && n%100<=19) ? 1 : 2;"
	slovenian   = "nplurals=4; plural=n%100==1 ? 0 : n%100==2 ? 1 : n%100==3 || n%100==4 ? 2 : 3;"
	maltese     = "nplurals=4; plural=n==1 ? 0 : n==0 || (n%100>=1 && n%100<=10) ? 1 : n%100>=11 && n%100<=19 ? 2 : 3;"
	welsh       = "nplurals=5; plural=n==0 ? 0 : n==1 ? 1 : n>=2 && n<=5 ? 2 : n==6 ? 3 : 4;"
	icelandic   = "nplurals=2; plural=n%10==1 && n%100!=11 ? 0 : 1;"
	macedonian  = "nplurals=3; plural=n%10==1 ? 0 : n%10==2 ? 1 : 2;"
	tagalog     = "nplurals=3; plural=n<=1 ? 0 : n%10==4 || n%10==6 || n%10==9 ? 1 : 2;"
	arabic      = "nplurals=6; plural=n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5;"

	// the middle form is for 11 as the leading group of thousands: 11, 11 000, 11 500 000
	catalan = "nplurals=3; plural=n==1 ? 0 : (n<1000 ? n : n<1000000 ? n/1000 : n<1000000000 ? n/1000000 : n/1000000000)==11 ? 1 : 2;"
)

// builtin maps ISO 639 base languages to their Plural-Forms. Languages not
// listed here use the English rule.
var builtin = map[string]string{
	"bi": singleForm, "my": singleForm, "zh": singleForm, "dz": singleForm,
	"fj": singleForm, "gn": singleForm, "hu": singleForm, "id": singleForm,
	"ja": singleForm, "jv": singleForm, "ko": singleForm, "ms": singleForm,
	"na": singleForm, "om": singleForm, "fa": singleForm, "su": singleForm,
	"tt": singleForm, "th": singleForm, "bo": singleForm, "tr": singleForm,
	"vi": singleForm, "yo": singleForm, "za": singleForm,

	"fr": frenchForm, "hy": frenchForm, "br": frenchForm, "fil": frenchForm,
	"ti": frenchForm, "wa": frenchForm,

	"ru": russianForm, "uk": russianForm, "be": russianForm, "bs": russianForm,
	"hr": russianForm, "sr": russianForm,

	"ga": irishForm, "dv": irishForm, "iu": irishForm, "ik": irishForm,
	"gv": irishForm, "mi": irishForm, "se": irishForm, "sm": irishForm,
	"sa": irishForm,

	"cs": slovakForm, "sk": slovakForm,
	"pl": polishForm,
	"lv": latvianForm,
	"lt": lithuanian,
	"ro": romanian,
	"sl": slovenian,
	"mt": maltese,
	"cy": welsh,
	"is": icelandic,
	"mk": macedonian,
	"tl": tagalog,
	"ca": catalan,
	"ar": arabic,
}

// regional holds the rules that only apply to one country of a language.
// They are consulted before builtin.
var regional = map[string]string{
	"pt_BR": frenchForm,
}

var english = MustParse(englishForm)

// English returns the rule used when nothing better is known
func English() Rule {
	return english
}

// Parse reads a gettext Plural-Forms value such as
// "nplurals=2; plural=(n != 1);"
func Parse(pluralForms string) (Rule, error) {
	forms, expr, err := extract(pluralForms)
	if err != nil {
		return Rule{}, err
	}
	formula, err := Compile(expr)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Forms: forms, Expr: expr, Formula: formula}, nil
}

// MustParse is like Parse but panics on error
func MustParse(pluralForms string) Rule {
	rule, err := Parse(pluralForms)
	if err != nil {
		panic(err)
	}
	return rule
}

func extract(text string) (int, string, error) {
	form := strings.TrimSpace(strings.ToLower(strings.Replace(text, "\\\n", "", -1)))
	if !strings.HasPrefix(form, "nplurals=") {
		return 0, "", fmt.Errorf("invalid Plural-Forms %q, not starting with nplurals=", text)
	}
	form = form[len("nplurals="):]
	sep := strings.Index(form, ";")
	if sep == -1 {
		return 0, "", fmt.Errorf("invalid Plural-Forms %q, can't find number of plurals", text)
	}
	forms, err := strconv.Atoi(strings.TrimSpace(form[:sep]))
	if err != nil {
		return 0, "", fmt.Errorf("invalid Plural-Forms %q, error parsing nplurals: %s", text, err)
	}
	if forms < 1 {
		return 0, "", fmt.Errorf("invalid Plural-Forms %q, nplurals must be at least 1", text)
	}
	form = strings.TrimSpace(form[sep+1:])
	if !strings.HasPrefix(form, "plural=") {
		return 0, "", fmt.Errorf("invalid plural formula %q, not starting with plural=", form)
	}
	form = strings.TrimSuffix(strings.TrimSpace(form[len("plural="):]), ";")
	return forms, strings.TrimSpace(form), nil
}

// ParseLanguage parses a language code as found in TS files ("en_US") or
// BCP 47 form ("en-US"). The POSIX "C" locale and empty codes are treated as
// undetermined.
func ParseLanguage(code string) (language.Tag, error) {
	code = strings.TrimSpace(code)
	if code == "" || code == "C" || code == "POSIX" {
		return language.Und, nil
	}
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		// drop the charset and modifier of POSIX locales like de_DE.UTF-8
		code = code[:i]
	}
	return language.Parse(strings.Replace(code, "_", "-", -1))
}

// ForLanguage returns the built-in rule for a language code. Unknown or
// unparseable codes get the English rule.
func ForLanguage(code string) Rule {
	tag, err := ParseLanguage(code)
	if err != nil {
		return english
	}
	return ForTag(tag)
}

// ForTag returns the built-in rule for a language tag. A rule for the
// language in the tag's region wins over the rule for the language.
func ForTag(tag language.Tag) Rule {
	base, confidence := tag.Base()
	if confidence == language.No {
		return english
	}
	// Region guesses a country for bare languages ("pt" gives BR), so only an
	// explicit region counts
	if region, confidence := tag.Region(); confidence == language.Exact {
		if forms, ok := regional[base.String()+"_"+region.String()]; ok {
			return MustParse(forms)
		}
	}
	if forms, ok := builtin[base.String()]; ok {
		return MustParse(forms)
	}
	return english
}
