package config

// Secret is a string that masks its value when printed or logged.
// Use Value() to get the actual string.
type Secret string

func (s Secret) String() string {
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return "[REDACTED]"
}

func (s Secret) Value() string {
	return string(s)
}

func (s Secret) IsEmpty() bool {
	return s == ""
}
