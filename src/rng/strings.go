package rng

import (
	"bytes"
	"errors"
)

func BuildCharset(lowers, uppers, numbers, symbols bool) []byte {
	var b []byte
	if lowers {
		b = append(b, []byte("abcdefghijklmnopqrstuvwxyz")...)
	}
	if uppers {
		b = append(b, []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...)
	}
	if numbers {
		b = append(b, []byte("0123456789")...)
	}
	if symbols {
		b = append(b, []byte("!#$%&()*+,-./:;<=>?@[]^_{|}~")...)
	}
	return b
}

// RandomString picks size characters from charset uniformly.
func RandomString(d Drawer, charset []byte, size int) (string, error) {
	if len(charset) == 0 {
		return "", errors.New("charset is empty")
	}

	var out bytes.Buffer
	out.Grow(size)
	for i := 0; i < size; i++ {
		index, err := UniformInt32(d, 0, len(charset)-1)
		if err != nil {
			return "", err
		}
		out.WriteByte(charset[int(index)])
	}
	return out.String(), nil
}
