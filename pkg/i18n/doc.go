// Package i18n loads message catalogs and renders localized strings.
//
// A catalog maps a language code to a nested tree of messages. Keys are
// addressed with dots ("signup.phone.length") and messages may carry named
// placeholders in the form %{name}:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSSource(i18n.NewYAMLParser(), locales, "locales"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("es", "signup.phone.length", "length", "10")
//
// Catalogs come from a Source: MapSource for in-memory data, FileSource for a
// single file and FSSource for every matching file of a directory in any
// fs.FS (embed.FS, os.DirFS, fstest.MapFS).
//
// Middleware negotiates the request language (query, cookie, Accept-Language)
// and stores it in the request context; Tc reads it back.
package i18n
