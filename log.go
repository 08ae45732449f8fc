package crunchbang

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid"
)

// maxLogEntries bounds the number of kept log entries.
const maxLogEntries = 10000

// Channel classifies log messages.
type Channel int

const (
	ChannelGame   Channel = iota // general game information
	ChannelCombat                // attacks and deaths
	ChannelMagic                 // effects
	ChannelTravel                // level changes
	ChannelError                 // invalid commands and turn errors
)

func (ch Channel) String() string {
	switch ch {
	case ChannelCombat:
		return "COMBAT"
	case ChannelMagic:
		return "MAGIC"
	case ChannelTravel:
		return "TRAVEL"
	case ChannelError:
		return "ERROR"
	default:
		return "GAME"
	}
}

// Color returns the color in which messages of the channel are displayed.
func (ch Channel) Color() gruid.Color {
	switch ch {
	case ChannelCombat:
		return ColorOrange
	case ChannelMagic:
		return ColorCyan
	case ChannelTravel:
		return ColorMagenta
	case ChannelError:
		return ColorRed
	default:
		return ColorForeground
	}
}

// LogEntry is a message of the game log.
type LogEntry struct {
	Text    string  // text for entry
	Channel Channel // message channel
	Index   int     // index of entry in log
	Tick    bool    // whether first entry in a turn
	Dups    int     // number of duplicates of current entry
}

func (e LogEntry) String() string {
	s := e.Text
	if e.Tick {
		s = "• " + s
	}
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	return s
}

// EffectRecord describes an applied effect for visualization.
type EffectRecord struct {
	Turn   int           // turn of application
	Desc   string        // effect description
	Color  gruid.Color   // effect color
	Points []gruid.Point // affected positions
}

// Log is the game's message log. It is owned by a Game and passed
// explicitly to whoever needs to report something to the player.
type Log struct {
	Entries  []LogEntry     // all kept log entries
	Index    int            // index of next log entry
	NextTick int            // index of first log entry in a turn
	Effects  []EffectRecord // effects not yet drained by the front-end
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{Entries: []LogEntry{}}
}

// UpperFirst returns a string with its first letter in upper case.
func UpperFirst(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[utf8.RuneLen(r):]
}

// Message adds a message on the given channel.
func (l *Log) Message(ch Channel, s string) {
	l.add(LogEntry{Text: UpperFirst(s), Channel: ch, Index: l.Index})
}

// Messagef adds a formatted message on the given channel.
func (l *Log) Messagef(ch Channel, format string, a ...any) {
	l.add(LogEntry{Text: UpperFirst(fmt.Sprintf(format, a...)), Channel: ch, Index: l.Index})
}

// add adds a new entry, folding it into the previous one if it is a
// duplicate within the same turn.
func (l *Log) add(e LogEntry) {
	if e.Index == l.NextTick {
		e.Tick = true
	}
	if !e.Tick && len(l.Entries) > 0 {
		le := &l.Entries[len(l.Entries)-1]
		if le.Text == e.Text && le.Channel == e.Channel {
			le.Dups++
			return
		}
	}
	l.Entries = append(l.Entries, e)
	l.Index++
	if len(l.Entries) > maxLogEntries {
		l.Entries = l.Entries[len(l.Entries)-maxLogEntries:]
	}
}

// NewTurn marks the start of a turn: the next message will be flagged as
// the turn's first.
func (l *Log) NewTurn() {
	l.NextTick = l.Index
}

// Last returns the last n entries, oldest first.
func (l *Log) Last(n int) []LogEntry {
	n = min(n, len(l.Entries))
	return l.Entries[len(l.Entries)-n:]
}

// RegisterEffect records an effect applied on the given positions.
func (l *Log) RegisterEffect(turn int, desc string, fg gruid.Color, ps []gruid.Point) {
	l.Effects = append(l.Effects, EffectRecord{Turn: turn, Desc: desc, Color: fg, Points: ps})
}

// DrainEffects returns the registered effects and forgets them.
func (l *Log) DrainEffects() []EffectRecord {
	effs := l.Effects
	l.Effects = nil
	return effs
}
