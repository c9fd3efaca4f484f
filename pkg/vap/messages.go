package vap

import "fmt"

// Messages is the canonical ordered error payload: one human-readable
// message per failed input.
type Messages []string

func Message(msg string) Messages {
	return Messages{msg}
}

func Messagef(format string, args ...any) Messages {
	return Messages{fmt.Sprintf(format, args...)}
}

// Append concatenates receiver elements then other's into a fresh slice.
func (m Messages) Append(other Messages) Messages {
	merged := make(Messages, 0, len(m)+len(other))
	merged = append(merged, m...)
	return append(merged, other...)
}
