// Package prg abstracts the keyed, nonce-reseedable byte stream that the
// root package's expandA/expandS/expandY squeeze during rejection sampling.
// It is kept separate from the root dilithium5 package so the expanders
// only need Reset/Squeeze; the root package's MakeKeys, Sign and Verify
// choose the backend by calling NewShake.
//
// Two backends are provided: Shake, keyed by key‖LE16(nonce) and reset at
// each Reset call using golang.org/x/crypto/sha3, and AESCTR, AES-256 in
// counter mode with a 16-byte IV.
package prg

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"
)

// KeySize is the size in bytes of a Counter's key.
const KeySize = 32

// blockSize is the AES block size, reused as the IV/output chunk size.
const blockSize = 16

// Counter is a keyed byte stream, resettable by a short nonce. Squeezing is
// reproducible given (key, nonce, position): two Counters constructed from
// the same key must produce identical bytes after an identical sequence of
// Reset/Squeeze calls.
type Counter interface {
	// Reset reseeds the stream's position to the start of nonce's substream.
	Reset(nonce uint16)
	// Squeeze fills out with the next len(out) bytes of the current substream.
	Squeeze(out []byte)
}

// shakeCounter implements Counter over SHAKE-256, keyed by key‖LE16(nonce).
type shakeCounter struct {
	key [KeySize]byte
	xof sha3.ShakeHash
}

// NewShake constructs a Counter backed by SHAKE-256.
func NewShake(key [KeySize]byte) Counter {
	return &shakeCounter{key: key}
}

func (c *shakeCounter) Reset(nonce uint16) {
	c.xof = sha3.NewShake256()
	c.xof.Write(c.key[:])
	c.xof.Write([]byte{byte(nonce), byte(nonce >> 8)})
}

func (c *shakeCounter) Squeeze(out []byte) {
	c.xof.Read(out)
}

// aesCTRCounter implements Counter over AES-256 in counter mode. The IV is
// laid out as LE16(nonce) ‖ zero-pad ‖ BE16(counter), with counter
// pre-incremented before each block is produced, matching the reference
// implementation's layout exactly.
type aesCTRCounter struct {
	block   cipher.Block
	iv      [blockSize]byte
	counter uint16
	buf     [blockSize]byte
	pos     int
}

// NewAESCTR constructs a Counter backed by AES-256-CTR.
func NewAESCTR(key [KeySize]byte) Counter {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// key is always KeySize=32 bytes, a valid AES-256 key; NewCipher
		// can only fail on bad key length.
		panic(err)
	}
	return &aesCTRCounter{block: block}
}

func (c *aesCTRCounter) Reset(nonce uint16) {
	for i := range c.iv {
		c.iv[i] = 0
	}
	c.iv[0] = byte(nonce)
	c.iv[1] = byte(nonce >> 8)
	c.counter = 0
	c.pos = blockSize
}

func (c *aesCTRCounter) Squeeze(out []byte) {
	for i := range out {
		if c.pos == blockSize {
			c.counter++
			c.iv[blockSize-2] = byte(c.counter >> 8)
			c.iv[blockSize-1] = byte(c.counter)
			c.block.Encrypt(c.buf[:], c.iv[:])
			c.pos = 0
		}
		out[i] = c.buf[c.pos]
		c.pos++
	}
}
