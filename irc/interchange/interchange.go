// Package interchange implements the externally tagged object representation
// of a parsed message. The shape is the contract between independent
// implementations of the engine (one compiled natively, one embedded in a
// browser); a message crossing a host boundary travels in this form:
//
//	{
//	  "tags": [{"key": "account", "value": "bob"}, {"key": "solanum.chat/oper"}],
//	  "prefix": {"Nickname": ["bob", "b", "example.com"]},
//	  "command": {"PRIVMSG": ["#chan", "hi"]}
//	}
//
// Server prefixes are {"ServerName": "irc.example.com"}. Known numeric
// replies use their conventional name ({"RPL_WELCOME": [...]}), unknown ones
// their zero-padded code ({"999": [...]}). The conventional reply names are
// reserved: a command key matching one always decodes as the numeric reply,
// never as a verb of that spelling.
package interchange

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sid3xyz/slirc/irc/protocol"
)

type envelope struct {
	Tags    []tagRecord         `json:"tags,omitempty"`
	Prefix  json.RawMessage     `json:"prefix,omitempty"`
	Command map[string][]string `json:"command"`
}

type tagRecord struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
}

type prefixRecord struct {
	ServerName *string   `json:"ServerName,omitempty"`
	Nickname   []*string `json:"Nickname,omitempty"`
}

// Marshal encodes a message in the interchange form.
func Marshal(msg *protocol.Message) ([]byte, error) {
	env := envelope{
		Command: map[string][]string{
			msg.Command.Name(): append([]string{}, msg.Command.Params...),
		},
	}

	for _, tag := range msg.Tags {
		env.Tags = append(env.Tags, tagRecord{Key: tag.Key, Value: tag.Value})
	}

	if msg.Prefix != nil {
		record := prefixRecord{}
		if msg.Prefix.IsServer() {
			name := msg.Prefix.Server
			record.ServerName = &name
		} else {
			record.Nickname = []*string{optional(msg.Prefix.Nick), optional(msg.Prefix.User), optional(msg.Prefix.Host)}
		}
		raw, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode the prefix")
		}
		env.Prefix = raw
	}

	rv, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode the message")
	}
	return rv, nil
}

// Unmarshal decodes a message from the interchange form. The command is run
// through the resolver, so a message violating an arity contract is rejected
// the same way a wire line would be.
func Unmarshal(data []byte) (*protocol.Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "could not decode the message")
	}

	if len(env.Command) != 1 {
		return nil, errors.Errorf("the command object must have exactly one key, got %d", len(env.Command))
	}

	rv := &protocol.Message{}
	for _, record := range env.Tags {
		rv.Tags = append(rv.Tags, protocol.Tag{Key: record.Key, Value: record.Value})
	}
	if err := protocol.ValidateTags(rv.Tags); err != nil {
		return nil, err
	}

	if len(env.Prefix) > 0 {
		prefix, err := decodePrefix(env.Prefix)
		if err != nil {
			return nil, err
		}
		rv.Prefix = prefix
	}

	for name, params := range env.Command {
		command, err := decodeCommand(name, params)
		if err != nil {
			return nil, err
		}
		rv.Command = command
	}
	return rv, nil
}

func decodePrefix(raw json.RawMessage) (*protocol.Prefix, error) {
	var record prefixRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.Wrap(err, "could not decode the prefix")
	}
	switch {
	case record.ServerName != nil:
		if *record.ServerName == "" {
			return nil, protocol.ErrEmptyPrefix
		}
		return &protocol.Prefix{Server: *record.ServerName}, nil
	case record.Nickname != nil:
		if len(record.Nickname) == 0 || record.Nickname[0] == nil || *record.Nickname[0] == "" {
			return nil, protocol.ErrEmptyPrefix
		}
		rv := &protocol.Prefix{Nick: *record.Nickname[0]}
		if len(record.Nickname) > 1 && record.Nickname[1] != nil {
			rv.User = *record.Nickname[1]
		}
		if len(record.Nickname) > 2 && record.Nickname[2] != nil {
			rv.Host = *record.Nickname[2]
		}
		return rv, nil
	default:
		return nil, errors.New("the prefix object must be a ServerName or a Nickname")
	}
}

// decodeCommand resolves an interchange command name. Reply names take
// precedence over verbs: a hypothetical wire verb literally named
// "RPL_WELCOME" decodes as numeric 001, since the interchange form reserves
// the conventional reply names for numerics.
func decodeCommand(name string, params []string) (protocol.Command, error) {
	if code, ok := protocol.ReplyFromName(name); ok {
		return protocol.Resolve(code.String(), params)
	}
	return protocol.Resolve(name, params)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
