package protocol

import (
	"errors"
	"testing"
)

func TestResolveArity(t *testing.T) {
	_, err := Resolve("NICK", nil)
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("expected ArityError, got %v", err)
	}
	if arity.Command != "NICK" || arity.Got != 0 {
		t.Fatalf("%+v", arity)
	}

	cmd, err := Resolve("NICK", []string{"newnick"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Verb != "NICK" || !cmd.Known() {
		t.Fatalf("%+v", cmd)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	cmd, err := Resolve("privmsg", []string{"#chan", "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Verb != "PRIVMSG" {
		t.Fatal(cmd.Verb)
	}
}

func TestResolveUnknownVerbPassesThrough(t *testing.T) {
	cmd, err := Resolve("FROBNICATE", []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Known() {
		t.Fatal("unknown verb must not be known")
	}
	if cmd.Verb != "FROBNICATE" || len(cmd.Params) != 2 {
		t.Fatalf("%+v", cmd)
	}
}

func TestResolveKnownNumeric(t *testing.T) {
	cmd, err := Resolve("001", []string{"nick", "Welcome"})
	if err != nil {
		t.Fatal(err)
	}
	if !cmd.IsNumeric() || cmd.Code != RPL_WELCOME || !cmd.Known() {
		t.Fatalf("%+v", cmd)
	}
	if cmd.Name() != "RPL_WELCOME" || cmd.Token() != "001" {
		t.Fatalf("name %q token %q", cmd.Name(), cmd.Token())
	}
}

func TestResolveUnknownNumeric(t *testing.T) {
	cmd, err := Resolve("999", []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if !cmd.IsNumeric() || cmd.Code != 999 || cmd.Known() {
		t.Fatalf("%+v", cmd)
	}
	if cmd.Name() != "999" {
		t.Fatal(cmd.Name())
	}
}

func TestResolveTooManyParams(t *testing.T) {
	params := make([]string, maxParams+1)
	for i := range params {
		params[i] = "p"
	}
	_, err := Resolve("PING", params)
	if !errors.Is(err, ErrTooManyParams) {
		t.Fatalf("expected ErrTooManyParams, got %v", err)
	}
}

func TestResolveZeroNumericIsVerb(t *testing.T) {
	cmd, err := Resolve("000", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.IsNumeric() {
		t.Fatalf("%+v", cmd)
	}
	if cmd.Token() != "000" {
		t.Fatal(cmd.Token())
	}
}

func TestNumericNames(t *testing.T) {
	if RPL_WELCOME.Name() != "RPL_WELCOME" {
		t.Fatal(RPL_WELCOME.Name())
	}
	if RPL_WELCOME.String() != "001" {
		t.Fatal(RPL_WELCOME.String())
	}
	if Numeric(999).Known() {
		t.Fatal("999 must be unknown")
	}
	code, ok := ReplyFromName("ERR_NICKNAMEINUSE")
	if !ok || code != ERR_NICKNAMEINUSE {
		t.Fatalf("%v %v", code, ok)
	}
}
