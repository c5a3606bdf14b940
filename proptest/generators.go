package proptest

import (
	"libbymon/internal/watchlist"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	authorGen  = rapid.StringMatching(`[A-Z][a-z]{2,8}( [A-Z][a-z]{2,8})?`)
	libraryGen = rapid.SampledFrom([]string{"telaviv", "nypl", "lapl", "toronto"})
)

func titleGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[A-Za-z][A-Za-z0-9' ]{0,24}[A-Za-z0-9]`),
		rapid.SampledFrom([]string{
			"Дюна",
			"Straße der Träume",
			"Cien años de soledad",
			"הנסיך הקטן",
		}),
	)
}

type BookGenOpt func(*bookGenConfig)

type bookGenConfig struct {
	title *string
}

func WithTitle(title string) BookGenOpt {
	return func(c *bookGenConfig) {
		c.title = &title
	}
}

func GenBook(t *rapid.T, opts ...BookGenOpt) watchlist.Book {
	cfg := &bookGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var title string
	if cfg.title != nil {
		title = *cfg.title
	} else {
		title = titleGen().Draw(t, "title")
	}

	var author string
	if rapid.Bool().Draw(t, "hasAuthor") {
		author = authorGen.Draw(t, "author")
	}

	return watchlist.NewBook(title, author, libraryGen.Draw(t, "library"))
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("books: [unclosed"),
		rapid.Just("books: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("books:\n  - id: missing\n  title: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func partialEntriesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("version: 1\nbooks:\n  - title: test\n"),
		rapid.Just("version: 1\nbooks:\n  - id: abc123\n"),
		rapid.Just("version: 1\nbooks:\n  - library: telaviv\n"),
		rapid.Just("version: 1\nbooks:\n  - {}\n"),
		rapid.Just("version: 1\nbooks:\n  - title: test\n    status: found\n"),
		rapid.Just("books:\n  - title: test\n    id: abc\n    library: nypl\n"),
	)
}
