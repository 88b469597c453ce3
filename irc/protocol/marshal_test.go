package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestMarshalParams(t *testing.T) {
	msg := &Message{
		Prefix:  &Prefix{Server: "prefix"},
		Command: Cmd("COMMAND", "p1", "p2"),
	}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != ":prefix COMMAND p1 p2" {
		t.Fatal(s)
	}
}

func TestMarshalTrailingSpace(t *testing.T) {
	msg := &Message{
		Command: Cmd("COMMAND", "p1", "p2 with space"),
	}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != "COMMAND p1 :p2 with space" {
		t.Fatal(s)
	}
}

func TestMarshalTrailingEmpty(t *testing.T) {
	msg := &Message{Command: Cmd("PRIVMSG", "#chan", "")}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != "PRIVMSG #chan :" {
		t.Fatal(s)
	}
}

func TestMarshalTrailingLeadingColon(t *testing.T) {
	msg := &Message{Command: Cmd("PRIVMSG", "#chan", ":)")}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != "PRIVMSG #chan ::)" {
		t.Fatal(s)
	}
}

func TestMarshalTags(t *testing.T) {
	msg := &Message{
		Tags:    []Tag{TagValue("a", "b c"), {Key: "d"}},
		Prefix:  &Prefix{Nick: "nick", User: "user", Host: "host"},
		Command: Cmd("PRIVMSG", "#chan", "hi"),
	}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != `@a=b\sc;d :nick!user@host PRIVMSG #chan hi` {
		t.Fatal(s)
	}
}

func TestMarshalNumeric(t *testing.T) {
	msg := &Message{
		Prefix:  &Prefix{Server: "irc.example.com"},
		Command: Reply(RPL_WELCOME, "nick", "Welcome to the network"),
	}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != ":irc.example.com 001 nick :Welcome to the network" {
		t.Fatal(s)
	}
}

func TestMarshalLowercaseVerb(t *testing.T) {
	msg := &Message{Command: Command{Verb: "privmsg", Params: []string{"#chan", "hi"}}}
	s, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if s != "PRIVMSG #chan hi" {
		t.Fatal(s)
	}
}

func TestMarshalMissingCommand(t *testing.T) {
	_, err := (&Message{}).Marshal()
	if !errors.Is(err, ErrMissingCommand) {
		t.Fatalf("expected ErrMissingCommand, got %v", err)
	}
}

func TestMarshalInvalidMiddleParam(t *testing.T) {
	for _, params := range [][]string{
		{"with space", "last"},
		{":colon", "last"},
		{"", "last"},
	} {
		msg := &Message{Command: Cmd("CMD", params...)}
		_, err := msg.Marshal()
		var invalid *InvalidParamError
		if !errors.As(err, &invalid) {
			t.Errorf("%q: expected InvalidParamError, got %v", params, err)
			continue
		}
		if invalid.Index != 0 {
			t.Errorf("%q: index %d", params, invalid.Index)
		}
	}
}

func TestMarshalNewlineInParam(t *testing.T) {
	msg := &Message{Command: Cmd("PRIVMSG", "#chan", "a\nb")}
	_, err := msg.Marshal()
	var invalid *InvalidParamError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParamError, got %v", err)
	}
}

func TestSerializeLineTooLong(t *testing.T) {
	msg := &Message{Command: Cmd("PRIVMSG", "#chan", strings.Repeat("x", 600))}
	_, err := Serialize(msg, DefaultLimits())
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	// A caller granting a larger budget gets the full line back.
	s, err := Serialize(msg, Limits{MaxLineLen: 1024})
	if err != nil {
		t.Fatal(err)
	}
	if len(s) <= 600 {
		t.Fatal(len(s))
	}
}

func TestSerializeTagsBudget(t *testing.T) {
	msg := &Message{
		Tags:    []Tag{TagValue("k", strings.Repeat("v", 500))},
		Command: Cmd("PING", "server"),
	}

	// Without a tags budget the tags count against the line budget.
	if _, err := Serialize(msg, DefaultLimits()); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	// With one, the body stays within 512 and the tags get their own cap.
	if _, err := Serialize(msg, Limits{MaxLineLen: 512, MaxTagsLen: 8191}); err != nil {
		t.Fatal(err)
	}
	if _, err := Serialize(msg, Limits{MaxLineLen: 512, MaxTagsLen: 128}); !errors.Is(err, ErrTagsTooLong) {
		t.Fatalf("expected ErrTagsTooLong, got %v", err)
	}
}

func TestMarshalNumericRange(t *testing.T) {
	for _, code := range []Numeric{1000, 5000, -1} {
		msg := &Message{Command: Reply(code, "x")}
		_, err := msg.Marshal()
		if !errors.Is(err, ErrNumericRange) {
			t.Errorf("%d: expected ErrNumericRange, got %v", code, err)
		}
	}
}

func TestMarshalInvalidTagKey(t *testing.T) {
	for _, key := range []string{"a b", "a;b", "a=b", "a\rb", "a\nb"} {
		msg := &Message{
			Tags:    []Tag{{Key: key}},
			Command: Cmd("PING", "x"),
		}
		_, err := msg.Marshal()
		var invalid *InvalidTagKeyError
		if !errors.As(err, &invalid) {
			t.Errorf("%q: expected InvalidTagKeyError, got %v", key, err)
			continue
		}
		if invalid.Key != key {
			t.Errorf("%q: key %q", key, invalid.Key)
		}
	}
}

func TestSerializeDuplicateTags(t *testing.T) {
	msg := &Message{
		Tags:    []Tag{{Key: "a"}, {Key: "a"}},
		Command: Cmd("PING", "x"),
	}
	_, err := msg.Marshal()
	var dup *DuplicateTagError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTagError, got %v", err)
	}
}
