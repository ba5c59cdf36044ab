package rng_test

import (
	"encoding/binary"
	"errors"
)

// counterDrawer emits 0,1,2,3,... from NextU32 and the same sequence as
// big-endian words from TryFillBytes.
type counterDrawer struct {
	next uint32
}

func (d *counterDrawer) NextU32() (uint32, error) {
	v := d.next
	d.next++
	return v, nil
}

func (d *counterDrawer) NextU64() (uint64, error) {
	hi, _ := d.NextU32()
	lo, _ := d.NextU32()
	return uint64(hi)<<32 | uint64(lo), nil
}

func (d *counterDrawer) TryFillBytes(p []byte) error {
	var buf [4]byte
	for len(p) > 0 {
		v, _ := d.NextU32()
		binary.BigEndian.PutUint32(buf[:], v)
		p = p[copy(p, buf[:]):]
	}
	return nil
}

// scriptedDrawer replays fixed uint32 values, then fails.
type scriptedDrawer struct {
	values []uint32
}

var errExhausted = errors.New("script exhausted")

func (d *scriptedDrawer) NextU32() (uint32, error) {
	if len(d.values) == 0 {
		return 0, errExhausted
	}
	v := d.values[0]
	d.values = d.values[1:]
	return v, nil
}

func (d *scriptedDrawer) NextU64() (uint64, error) {
	v, err := d.NextU32()
	return uint64(v), err
}

func (d *scriptedDrawer) TryFillBytes(p []byte) error {
	for i := range p {
		v, err := d.NextU32()
		if err != nil {
			return err
		}
		p[i] = byte(v)
	}
	return nil
}

// xorshift32 is a seeded pseudo RNG for distribution smoke tests.
type xorshift32 struct {
	x uint32
}

func (r *xorshift32) NextU32() (uint32, error) {
	r.x ^= r.x << 13
	r.x ^= r.x >> 17
	r.x ^= r.x << 5
	return r.x, nil
}

func (r *xorshift32) NextU64() (uint64, error) {
	hi, _ := r.NextU32()
	lo, _ := r.NextU32()
	return uint64(hi)<<32 | uint64(lo), nil
}

func (r *xorshift32) TryFillBytes(p []byte) error {
	for i := range p {
		v, _ := r.NextU32()
		p[i] = byte(v >> 24)
	}
	return nil
}
