// Package rijndael implements the Rijndael block cipher with a 256 bit block
// and a 256 bit key, the variant E3DC controllers encrypt RSCP frames with.
// This is not AES, which fixes the block at 128 bits, so the stdlib cipher
// cannot be used here.
package rijndael

import (
	"crypto/cipher"
	"fmt"
)

const (
	BlockSize = 32
	KeySize   = 32
)

const (
	nb     = 8  // state columns
	nk     = 8  // key words
	rounds = 14 // for nb == nk == 8
)

// row shift offsets for the 256 bit block, rows 0..3
var shifts = [4]int{0, 1, 3, 4}

var sbox [256]byte
var sboxinv [256]byte

// sbox is the field inverse followed by the affine transform, generated by
// walking the 0x03 / 0xf6 generator pair instead of pasting the table
func init() {
	p, q := byte(1), byte(1)
	for {
		hi := p & 0x80
		p ^= p << 1
		if hi != 0 {
			p ^= 0x1B
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		xf := q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4)
		sbox[p] = xf ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63

	for i := range sbox {
		sboxinv[sbox[i]] = byte(i)
	}
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

// gmul multiplies in GF(2^8) with the AES reduction polynomial
func gmul(a byte, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}

type rijndael struct {
	rk [(rounds + 1) * BlockSize]byte
}

// NewCipher returns a cipher.Block for the given 32 byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("rijndael: key has to be %d bytes long", KeySize)
	}
	r := &rijndael{}
	r.expand_key(key)
	return r, nil
}

func (r *rijndael) BlockSize() int { return BlockSize }

// expand_key fills 15 round keys, word oriented, with the extra subword step
// every 4th word that the 8 word key schedule requires
func (r *rijndael) expand_key(key []byte) {
	copy(r.rk[:KeySize], key)
	rcon := byte(1)
	for i := nk; i < (rounds+1)*nb; i++ {
		var t [4]byte
		copy(t[:], r.rk[(i-1)*4:i*4])
		switch {
		case i%nk == 0:
			t = [4]byte{sbox[t[1]] ^ rcon, sbox[t[2]], sbox[t[3]], sbox[t[0]]}
			hi := rcon & 0x80
			rcon <<= 1
			if hi != 0 {
				rcon ^= 0x1B
			}
		case i%nk == 4:
			t = [4]byte{sbox[t[0]], sbox[t[1]], sbox[t[2]], sbox[t[3]]}
		}
		for j := 0; j < 4; j++ {
			r.rk[i*4+j] = r.rk[(i-nk)*4+j] ^ t[j]
		}
	}
}

// state is column major, byte c*4+r holds row r of column c, which makes the
// in/out mapping the identity and round key xor a flat loop

func (r *rijndael) add_round_key(state *[BlockSize]byte, round int) {
	for i := range state {
		state[i] ^= r.rk[round*BlockSize+i]
	}
}

func sub_bytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func inv_sub_bytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sboxinv[state[i]]
	}
}

func shift_rows(state *[BlockSize]byte) {
	var t [BlockSize]byte
	for c := 0; c < nb; c++ {
		for row := 0; row < 4; row++ {
			t[c*4+row] = state[((c+shifts[row])%nb)*4+row]
		}
	}
	*state = t
}

func inv_shift_rows(state *[BlockSize]byte) {
	var t [BlockSize]byte
	for c := 0; c < nb; c++ {
		for row := 0; row < 4; row++ {
			t[((c+shifts[row])%nb)*4+row] = state[c*4+row]
		}
	}
	*state = t
}

func mix_columns(state *[BlockSize]byte) {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := state[c*4], state[c*4+1], state[c*4+2], state[c*4+3]
		state[c*4] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[c*4+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[c*4+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[c*4+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func inv_mix_columns(state *[BlockSize]byte) {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := state[c*4], state[c*4+1], state[c*4+2], state[c*4+3]
		state[c*4] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		state[c*4+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		state[c*4+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		state[c*4+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}

func (r *rijndael) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	var state [BlockSize]byte
	copy(state[:], src)

	r.add_round_key(&state, 0)
	for round := 1; round < rounds; round++ {
		sub_bytes(&state)
		shift_rows(&state)
		mix_columns(&state)
		r.add_round_key(&state, round)
	}
	sub_bytes(&state)
	shift_rows(&state)
	r.add_round_key(&state, rounds)

	copy(dst, state[:])
}

func (r *rijndael) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	var state [BlockSize]byte
	copy(state[:], src)

	r.add_round_key(&state, rounds)
	for round := rounds - 1; round >= 1; round-- {
		inv_shift_rows(&state)
		inv_sub_bytes(&state)
		r.add_round_key(&state, round)
		inv_mix_columns(&state)
	}
	inv_shift_rows(&state)
	inv_sub_bytes(&state)
	r.add_round_key(&state, 0)

	copy(dst, state[:])
}
