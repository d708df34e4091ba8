package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred       string
	NoEditorDefined     string
	ReleaseToolMissing  string
	NotATSFile          string
	NoCatalogs          string
	UnknownLocale       string
	NoTranslation       string
	InvalidPluralForms  string
	InvalidStatsField   string
	ConfigFileLocation  string
	CheckPassed         string
	CheckFailed         string
	ExportedTo          string
	ReleasedTo          string
	MissingTranslations string

	ContextColumn      string
	SourceColumn       string
	CommentColumn      string
	TranslationColumn  string
	StatusColumn       string
	MessagesColumn     string
	FinishedColumn     string
	UnfinishedColumn   string
	UntranslatedColumn string
	CompletionColumn   string
	TotalRow           string

	StatusFinished     string
	StatusUnfinished   string
	StatusUntranslated string
	StatusObsolete     string
	StatusVanished     string
	StatusNumerus      string

	LanguageLabel       string
	SourceLanguageLabel string
	VersionLabel        string
	ContextsLabel       string
	MessagesLabel       string

	ContextsTitle     string
	NoContexts        string
	NotEnoughSpace    string
	NavigateOption    string
	SwitchPanelOption string
	QuitOption        string
}

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:       "An error occurred! Please create an issue at https://github.com/nymea/tscat/issues",
		NoEditorDefined:     "No editor defined in $VISUAL or $EDITOR",
		ReleaseToolMissing:  "Could not run the release command. Install Qt's linguist tools or set commandTemplates.release in your config",
		NotATSFile:          "This is not a Qt Linguist TS file",
		NoCatalogs:          "No catalogs found. Pass a TS file or set catalogDirs in your config",
		UnknownLocale:       "No catalog matches locale %s, showing the source text",
		NoTranslation:       "No translation found, showing the source text",
		InvalidPluralForms:  "Invalid pluralForms in your config",
		InvalidStatsField:   "Unknown stats field %s",
		ConfigFileLocation:  "Config file: %s",
		CheckPassed:         "%s is in canonical lupdate format",
		CheckFailed:         "%s differs from the canonical lupdate format",
		ExportedTo:          "Exported %s to %s",
		ReleasedTo:          "Compiled %s into %s",
		MissingTranslations: "%d messages still need translating",

		ContextColumn:      "context",
		SourceColumn:       "source",
		CommentColumn:      "comment",
		TranslationColumn:  "translation",
		StatusColumn:       "status",
		MessagesColumn:     "messages",
		FinishedColumn:     "finished",
		UnfinishedColumn:   "unfinished",
		UntranslatedColumn: "untranslated",
		CompletionColumn:   "done",
		TotalRow:           "total",

		StatusFinished:     "finished",
		StatusUnfinished:   "unfinished",
		StatusUntranslated: "untranslated",
		StatusObsolete:     "obsolete",
		StatusVanished:     "vanished",
		StatusNumerus:      "numerus",

		LanguageLabel:       "language",
		SourceLanguageLabel: "source language",
		VersionLabel:        "version",
		ContextsLabel:       "contexts",
		MessagesLabel:       "messages",

		ContextsTitle:     "Contexts",
		NoContexts:        "No contexts in this file",
		NotEnoughSpace:    "Not enough space to render panels",
		NavigateOption:    "navigate",
		SwitchPanelOption: "switch panel",
		QuitOption:        "quit",
	}
}
