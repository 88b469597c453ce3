package protocol

import (
	"fmt"
	"strings"
)

// Command is the discriminated part of a message: either a named command
// (Verb is the canonical upper case token) or a numeric reply (Verb is empty
// and Code holds the three digit code). Params is the ordered parameter list,
// the trailing parameter last.
type Command struct {
	Verb   string
	Code   Numeric
	Params []string
}

// Cmd creates a named command. The verb is stored in its canonical upper
// case form.
func Cmd(verb string, params ...string) Command {
	return Command{Verb: strings.ToUpper(verb), Params: params}
}

// Reply creates a numeric reply.
func Reply(code Numeric, params ...string) Command {
	return Command{Code: code, Params: params}
}

// IsNumeric reports whether the command is a numeric reply.
func (c Command) IsNumeric() bool {
	return c.Verb == ""
}

// Known reports whether the command is in the named command table or, for a
// numeric reply, whether the code is a recognized reply. Unknown commands
// still parse and serialize; the engine stays forward compatible with verbs
// it has no schema for.
func (c Command) Known() bool {
	if c.IsNumeric() {
		return c.Code.Known()
	}
	_, ok := commands[c.Verb]
	return ok
}

// Token returns the command the way it travels on the wire: the upper case
// verb or the zero-padded numeric code.
func (c Command) Token() string {
	if c.IsNumeric() {
		return c.Code.String()
	}
	return strings.ToUpper(c.Verb)
}

// Name returns the command name used in the interchange form: the verb, the
// conventional reply name, or the zero-padded code for unknown replies.
func (c Command) Name() string {
	if c.IsNumeric() {
		return c.Code.Name()
	}
	return strings.ToUpper(c.Verb)
}

// ArityError is returned when a command's parameter count violates its arity
// contract.
type ArityError struct {
	Command  string
	Expected string
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s takes %s parameters, got %d", e.Command, e.Expected, e.Got)
}

// aritySpec is the parameter count contract of a named command. max below
// zero means any count up to the protocol maximum.
type aritySpec struct {
	min int
	max int
}

func (s aritySpec) check(verb string, got int) error {
	if got < s.min || (s.max >= 0 && got > s.max) {
		return &ArityError{Command: verb, Expected: s.expected(), Got: got}
	}
	return nil
}

func (s aritySpec) expected() string {
	switch {
	case s.max < 0:
		return fmt.Sprintf("at least %d", s.min)
	case s.min == s.max:
		return fmt.Sprintf("exactly %d", s.min)
	default:
		return fmt.Sprintf("between %d and %d", s.min, s.max)
	}
}

// commands is the named command table: every verb the engine recognizes and
// its arity contract. RFC 2812 first, then the IRCv3 and common extension
// verbs. The table is read-only static data.
var commands = map[string]aritySpec{
	// Connection registration.
	"PASS":         {1, 1},
	"NICK":         {1, 1},
	"USER":         {4, 4},
	"OPER":         {2, 2},
	"MODE":         {1, -1},
	"SERVICE":      {6, 6},
	"QUIT":         {0, 1},
	"SQUIT":        {2, 2},
	"STARTTLS":     {0, 0},
	"AUTHENTICATE": {1, 1},
	"CAP":          {1, 3},
	"WEBIRC":       {4, 5},

	// Channel operations.
	"JOIN":   {1, 2},
	"PART":   {1, 2},
	"TOPIC":  {1, 2},
	"NAMES":  {0, 2},
	"LIST":   {0, 2},
	"INVITE": {2, 2},
	"KICK":   {2, 3},
	"KNOCK":  {1, 2},

	// Sending messages.
	"PRIVMSG": {2, 2},
	"NOTICE":  {2, 2},
	"TAGMSG":  {1, 1},
	"WALLOPS": {1, 1},
	"GLOBOPS": {1, 1},
	"LOCOPS":  {1, 1},

	// Server queries and commands.
	"MOTD":    {0, 1},
	"LUSERS":  {0, 2},
	"VERSION": {0, 1},
	"STATS":   {0, 2},
	"LINKS":   {0, 2},
	"TIME":    {0, 1},
	"CONNECT": {2, 3},
	"TRACE":   {0, 1},
	"ADMIN":   {0, 1},
	"INFO":    {0, 1},
	"MAP":     {0, 0},
	"HELP":    {0, 1},
	"REHASH":  {0, 0},
	"DIE":     {0, 0},
	"RESTART": {0, 0},

	// Service queries.
	"SERVLIST": {0, 2},
	"SQUERY":   {2, 2},

	// User queries.
	"WHO":      {0, 2},
	"WHOIS":    {1, 2},
	"WHOWAS":   {1, 3},
	"USERHOST": {1, 5},
	"USERIP":   {1, 1},
	"ISON":     {1, -1},

	// Miscellaneous.
	"KILL":    {2, 2},
	"PING":    {1, 2},
	"PONG":    {1, 2},
	"ERROR":   {1, 1},
	"AWAY":    {0, 1},
	"SUMMON":  {1, 3},
	"USERS":   {0, 1},
	"SILENCE": {0, -1},
	"WATCH":   {1, -1},

	// Server to server.
	"SERVER": {3, -1},
	"NJOIN":  {2, 2},

	// IRCv3 extensions.
	"ACCOUNT":     {1, 1},
	"BATCH":       {1, -1},
	"CHGHOST":     {2, 2},
	"SETNAME":     {1, 1},
	"MONITOR":     {1, 2},
	"CHATHISTORY": {3, 5},
	"FAIL":        {2, -1},
	"WARN":        {2, -1},
	"NOTE":        {2, -1},
	"REGISTER":    {3, 3},
	"VERIFY":      {2, 2},
	"MARKREAD":    {1, 2},
	"REDACT":      {2, 3},
	"METADATA":    {2, -1},
	"ACCEPT":      {1, 1},
	"RESUME":      {1, 3},
}

// Resolve maps a command token and its parameters to a command. Verbs are
// matched case insensitively; a token of exactly three ASCII digits is a
// numeric reply. Unknown verbs resolve to a passthrough command rather than
// failing.
func Resolve(token string, params []string) (Command, error) {
	if len(params) > maxParams {
		return Command{}, ErrTooManyParams
	}
	if token == "" {
		return Command{}, ErrMissingCommand
	}

	if code, ok := numericToken(token); ok {
		return Command{Code: code, Params: params}, nil
	}

	verb := strings.ToUpper(token)
	if spec, ok := commands[verb]; ok {
		if err := spec.check(verb, len(params)); err != nil {
			return Command{}, err
		}
	}
	return Command{Verb: verb, Params: params}, nil
}

func numericToken(token string) (Numeric, bool) {
	if len(token) != 3 {
		return 0, false
	}
	code := 0
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
		code = code*10 + int(token[i]-'0')
	}
	if code == 0 {
		// Reply codes run 001-999; "000" is carried as an unknown verb.
		return 0, false
	}
	return Numeric(code), true
}
