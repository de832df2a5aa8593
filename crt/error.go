package crt

// NoElementFound - Custom error to inform that no element was found
type NoElementFound struct {
	msg string
}

// Error - Used to notify that no element was found
func (E NoElementFound) Error() string {
	if E.msg == "" {
		return "no element found"
	}
	return E.msg
}

// NoKeyFound - Custom error to inform that no key was found
type NoKeyFound struct {
	msg string
}

// Error - Used to notify that no key was found
func (E NoKeyFound) Error() string {
	if E.msg == "" {
		return "no key found"
	}
	return E.msg
}
