package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:   "Wystąpił błąd! Zgłoś problem na https://github.com/nymea/tscat/issues",
		NoEditorDefined: "Nie zdefiniowano edytora w $VISUAL ani $EDITOR",
		NotATSFile:      "To nie jest plik TS Qt Linguist",
		NoTranslation:   "Nie znaleziono tłumaczenia, wyświetlany jest tekst źródłowy",
		CheckPassed:     "%s jest w kanonicznym formacie lupdate",
		CheckFailed:     "%s różni się od kanonicznego formatu lupdate",

		ContextColumn:     "kontekst",
		SourceColumn:      "źródło",
		CommentColumn:     "komentarz",
		TranslationColumn: "tłumaczenie",
		StatusColumn:      "stan",
		TotalRow:          "razem",

		StatusFinished:     "gotowe",
		StatusUnfinished:   "niegotowe",
		StatusUntranslated: "nieprzetłumaczone",
		StatusObsolete:     "przestarzałe",
		StatusVanished:     "zniknęło",

		LanguageLabel: "język",
		ContextsLabel: "konteksty",
		MessagesLabel: "komunikaty",
	}
}
