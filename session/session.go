// Package session holds the state a front end keeps between codec calls:
// the chosen message width and the current codeword. A Session is a value;
// every operation returns a new Session and leaves the receiver untouched,
// so a failed operation never disturbs the current codeword.
package session

import (
	"fmt"

	"github.com/nathanhack/secded/linearblock/hamming"
	"github.com/sirupsen/logrus"
)

// Widths are the message widths offered by the front ends.
var Widths = []int{8, 16, 32}

type Session struct {
	Width    int
	Codeword string
}

// New starts an empty session for messages of width bits.
func New(width int) (Session, error) {
	if _, err := hamming.New(width); err != nil {
		return Session{}, err
	}
	return Session{Width: width}, nil
}

// Empty is true until a message has been encoded.
func (s Session) Empty() bool {
	return s.Codeword == ""
}

// WithWidth changes the width, dropping the current codeword.
func (s Session) WithWidth(width int) (Session, error) {
	return New(width)
}

// Encode replaces the current codeword with the encoding of message.
func (s Session) Encode(message string) (Session, error) {
	codeword, err := hamming.Encode(message, s.Width)
	if err != nil {
		return s, fmt.Errorf("please enter a %v bit binary message: %w", s.Width, err)
	}
	logrus.Debugf("encoded %v -> %v", message, codeword)
	s.Codeword = codeword
	return s, nil
}

// Inject flips the bit at index, counted from the left of the codeword.
func (s Session) Inject(index int) (Session, error) {
	if s.Empty() {
		return s, fmt.Errorf("encode a message first")
	}
	codeword, err := hamming.FlipBit(s.Codeword, index)
	if err != nil {
		return s, fmt.Errorf("please enter a value between 0 and %v: %w", len(s.Codeword)-1, err)
	}
	logrus.Debugf("flipped bit %v: %v -> %v", index, s.Codeword, codeword)
	s.Codeword = codeword
	return s, nil
}

// InjectFromRight flips the bit at index counted from the right, so index 0
// is the overall parity bit.
func (s Session) InjectFromRight(index int) (Session, error) {
	if s.Empty() {
		return s, fmt.Errorf("encode a message first")
	}
	if index < 0 || index >= len(s.Codeword) {
		return s, fmt.Errorf("please enter a value between 0 and %v: %w", len(s.Codeword)-1, hamming.ErrIndexOutOfRange)
	}
	return s.Inject(len(s.Codeword) - 1 - index)
}

// Correct decodes the current codeword and keeps the corrected result.
func (s Session) Correct() (Session, hamming.Result, error) {
	if s.Empty() {
		return s, hamming.Result{}, fmt.Errorf("encode a message first")
	}
	result, err := hamming.Decode(s.Codeword)
	if err != nil {
		return s, hamming.Result{}, err
	}
	logrus.Debugf("decoded %v: %v syndrome=%v", s.Codeword, result.Status, result.Syndrome)
	s.Codeword = result.Codeword
	return s, result, nil
}

// Message returns the data bits of the current codeword as is.
func (s Session) Message() (string, error) {
	if s.Empty() {
		return "", fmt.Errorf("encode a message first")
	}
	c, err := hamming.New(s.Width)
	if err != nil {
		return "", err
	}
	return c.Extract(s.Codeword)
}
