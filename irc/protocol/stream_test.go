package protocol

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecoderReadsLines(t *testing.T) {
	input := "PING server\r\nPRIVMSG #chan :hello\r\n"
	d := NewDecoder(strings.NewReader(input))

	msg, err := d.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Command.Verb != "PING" {
		t.Fatal(msg.Command.Verb)
	}

	msg, err = d.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Command.Params[1] != "hello" {
		t.Fatal(msg.Command.Params)
	}

	_, err = d.Decode()
	if err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestDecoderFinalLineWithoutTerminator(t *testing.T) {
	d := NewDecoder(strings.NewReader("PING server"))
	msg, err := d.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Command.Verb != "PING" {
		t.Fatal(msg.Command.Verb)
	}
}

func TestDecoderBadLineDoesNotPoisonNext(t *testing.T) {
	d := NewDecoder(strings.NewReader("@a=1;a=2 PING x\r\nPING y\r\n"))

	_, err := d.Decode()
	var dup *DuplicateTagError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTagError, got %v", err)
	}

	msg, err := d.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Command.Params[0] != "y" {
		t.Fatal(msg.Command.Params)
	}
}

func TestEncoderAppendsCRLF(t *testing.T) {
	buf := &bytes.Buffer{}
	e := NewEncoder(buf, DefaultLimits())
	err := e.Encode(&Message{Command: Cmd("PING", "server")})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "PING server\r\n" {
		t.Fatal(buf.String())
	}
}

func TestEncoderHonorsLimits(t *testing.T) {
	buf := &bytes.Buffer{}
	e := NewEncoder(buf, Limits{MaxLineLen: 16})
	err := e.Encode(&Message{Command: Cmd("PRIVMSG", "#chan", "much too long for this")})
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing may be written on failure")
	}
}
