package i18n

func germanSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:       "Ein Fehler ist aufgetreten! Bitte erstelle ein Issue unter https://github.com/nymea/tscat/issues",
		NoEditorDefined:     "Kein Editor in $VISUAL oder $EDITOR festgelegt",
		ReleaseToolMissing:  "Der Release-Befehl konnte nicht ausgeführt werden. Installiere die Qt Linguist Tools oder setze commandTemplates.release in deiner Konfiguration",
		NotATSFile:          "Das ist keine Qt Linguist TS-Datei",
		NoCatalogs:          "Keine Kataloge gefunden. Gib eine TS-Datei an oder setze catalogDirs in deiner Konfiguration",
		UnknownLocale:       "Kein Katalog passt zum Gebietsschema %s, der Quelltext wird angezeigt",
		NoTranslation:       "Keine Übersetzung gefunden, der Quelltext wird angezeigt",
		InvalidPluralForms:  "Ungültige pluralForms in deiner Konfiguration",
		InvalidStatsField:   "Unbekanntes Statistikfeld %s",
		ConfigFileLocation:  "Konfigurationsdatei: %s",
		CheckPassed:         "%s ist im kanonischen lupdate-Format",
		CheckFailed:         "%s weicht vom kanonischen lupdate-Format ab",
		ExportedTo:          "%s nach %s exportiert",
		ReleasedTo:          "%s nach %s kompiliert",
		MissingTranslations: "%d Meldungen müssen noch übersetzt werden",

		ContextColumn:      "Kontext",
		SourceColumn:       "Quelle",
		CommentColumn:      "Kommentar",
		TranslationColumn:  "Übersetzung",
		StatusColumn:       "Status",
		MessagesColumn:     "Meldungen",
		FinishedColumn:     "fertig",
		UnfinishedColumn:   "unfertig",
		UntranslatedColumn: "unübersetzt",
		CompletionColumn:   "erledigt",
		TotalRow:           "gesamt",

		StatusFinished:     "fertig",
		StatusUnfinished:   "unfertig",
		StatusUntranslated: "unübersetzt",
		StatusObsolete:     "veraltet",
		StatusVanished:     "verschwunden",
		StatusNumerus:      "Numerus",

		LanguageLabel:       "Sprache",
		SourceLanguageLabel: "Quellsprache",
		VersionLabel:        "Version",
		ContextsLabel:       "Kontexte",
		MessagesLabel:       "Meldungen",

		ContextsTitle:     "Kontexte",
		NoContexts:        "Keine Kontexte in dieser Datei",
		NotEnoughSpace:    "Zu wenig Platz für die Anzeige",
		NavigateOption:    "navigieren",
		SwitchPanelOption: "Bereich wechseln",
		QuitOption:        "beenden",
	}
}
