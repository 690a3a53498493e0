package ciphering

import (
	"crypto/cipher"
	"errors"

	"github.com/hausenergie/librscp-go/rijndael"
)

const BlockSize = rijndael.BlockSize

var ErrNotBlockAligned = errors.New("ciphered data is not block aligned")

// Cipher is the RSCP message cipher: Rijndael with a 256 bit block and key
// in CBC mode with zero padding. The IV is not transmitted, both sides keep
// a running IV per direction, seeded with 0xFF bytes and carried across
// messages as the last ciphertext block seen in that direction.
type Cipher struct {
	block  cipher.Block
	sendiv [BlockSize]byte
	recviv [BlockSize]byte
}

// New derives the block key from the shared secret: a 32 byte buffer
// prefilled with 0xFF, the secret copied over it and truncated at 32 bytes.
func New(secret string) (*Cipher, error) {
	var key [rijndael.KeySize]byte
	for i := range key {
		key[i] = 0xFF
	}
	copy(key[:], secret)

	block, err := rijndael.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	c := &Cipher{block: block}
	c.Reset()
	return c, nil
}

// Reset returns both direction chains to the initial seed. Has to happen on
// every fresh connection, the peer starts from the seed as well.
func (c *Cipher) Reset() {
	for i := range c.sendiv {
		c.sendiv[i] = 0xFF
	}
	for i := range c.recviv {
		c.recviv[i] = 0xFF
	}
}

// Encrypt pads plain with zeros up to a whole number of blocks, aligned
// input gets no extra block, and advances the send chain to the last
// produced ciphertext block.
func (c *Cipher) Encrypt(plain []byte) []byte {
	padded := (len(plain) + BlockSize - 1) / BlockSize * BlockSize
	if padded == 0 {
		return nil
	}
	buf := make([]byte, padded)
	copy(buf, plain)

	enc := cipher.NewCBCEncrypter(c.block, c.sendiv[:])
	enc.CryptBlocks(buf, buf)
	copy(c.sendiv[:], buf[padded-BlockSize:])
	return buf
}

// Decrypt expects a non empty whole number of blocks and advances the
// receive chain to the last input block. Zero padding is kept, only the
// frame layer knows the real length. Calls chain, so a message can be
// decrypted in pieces as it arrives.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, ErrNotBlockAligned
	}
	out := make([]byte, len(data))

	dec := cipher.NewCBCDecrypter(c.block, c.recviv[:])
	dec.CryptBlocks(out, data)
	copy(c.recviv[:], data[len(data)-BlockSize:])
	return out, nil
}
