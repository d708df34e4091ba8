// This "script" lists the UI strings each of tscat's own languages is still
// missing. Missing strings fall back to English at run time.
//
// To check every language run:
//   go run scripts/translations/get_required_translations.go
// or pass language codes to check only those:
//   go run scripts/translations/get_required_translations.go pl

package main

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/nymea/tscat/pkg/i18n"
	"github.com/samber/lo"
)

func main() {
	output, missing := getOutstandingTranslations(os.Args[1:])
	fmt.Print(output)
	if missing > 0 {
		os.Exit(1)
	}
}

func getOutstandingTranslations(languages []string) (string, int) {
	sets := i18n.GetTranslationSets()
	english := reflect.ValueOf(sets[i18n.EN])

	if len(languages) == 0 {
		languages = lo.Without(lo.Keys(sets), i18n.EN)
		sort.Strings(languages)
	}

	var sb strings.Builder
	total := 0
	for _, languageCode := range languages {
		set, ok := sets[languageCode]
		if !ok {
			fmt.Fprintf(&sb, "%s: unknown language\n", languageCode)
			total++
			continue
		}

		v := reflect.ValueOf(set)
		missing := []string{}
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				missing = append(missing, fmt.Sprintf("  %s: %q", v.Type().Field(i).Name, english.Field(i).String()))
			}
		}

		if len(missing) == 0 {
			fmt.Fprintf(&sb, "%s: complete\n", languageCode)
			continue
		}
		fmt.Fprintf(&sb, "%s: %d missing\n%s\n", languageCode, len(missing), strings.Join(missing, "\n"))
		total += len(missing)
	}
	return sb.String(), total
}
