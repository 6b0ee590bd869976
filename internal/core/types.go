package core

const (
	BotName       = "Brainiac"
	BotUserAgent  = "brainbot/0.1"
	BotVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/brainbot"
)

// Incoming is a single gateway message reduced to what dispatch needs.
// AuthorMention is ready-to-embed markdown that pings the author.
type Incoming struct {
	Text          string
	AuthorID      int64
	AuthorName    string
	AuthorMention string
}
