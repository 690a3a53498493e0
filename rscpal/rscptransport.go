package rscpal

import (
	"fmt"
	"io"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/ciphering"
)

func (d *rscpal) exchangeframe(req *Frame, logplain bool) (*Frame, error) {
	if !d.transport.isopen {
		return nil, base.ErrNotOpened
	}
	enc, err := req.Encode()
	if err != nil {
		return nil, err
	}
	if logplain {
		d.dlogf(base.LogHex("TX frame", enc))
	}
	raw, err := d.sendreceiveraw(enc)
	if err != nil {
		return nil, err
	}
	if logplain {
		d.dlogf(base.LogHex("RX frame", raw))
	}
	rsp, err := DecodeFrame(raw)
	if err != nil {
		// the bytes deciphered but do not parse, so the chain position is
		// suspect just as with a garbled header block
		d.fail()
		return nil, fmt.Errorf("%w: %v", ErrDesynchronized, err)
	}
	return rsp, nil
}

// sendreceiveraw pushes one ciphered frame out and reassembles the deciphered
// answer. The first block is enough to learn the full length from the frame
// header, the remainder is read in one go.
func (d *rscpal) sendreceiveraw(enc []byte) ([]byte, error) {
	if d.settings.ResponseTimeout > 0 {
		d.transport.SetDeadline(time.Now().Add(d.settings.ResponseTimeout))
		defer d.transport.SetDeadline(time.Time{})
	}
	d.transport.SetMaxReceivedBytes(d.settings.MaxReceiveSize)

	if err := d.transport.Write(d.cipher.Encrypt(enc)); err != nil {
		d.fail()
		return nil, err
	}

	first := make([]byte, ciphering.BlockSize)
	if _, err := io.ReadFull(d.transport, first); err != nil {
		d.fail()
		return nil, fmt.Errorf("unable to receive answer: %w", err)
	}
	data, err := d.cipher.Decrypt(first)
	if err != nil {
		d.fail()
		return nil, err
	}
	total, err := frameTotal(data)
	if err != nil {
		d.fail()
		return nil, fmt.Errorf("%w: %v", ErrDesynchronized, err)
	}
	if int64(total) > d.settings.MaxReceiveSize {
		d.fail()
		return nil, fmt.Errorf("announced frame of %v bytes exceeds the %v byte receive limit", total, d.settings.MaxReceiveSize)
	}
	if total <= len(data) {
		return data, nil
	}

	rem := total - len(data)
	blocks := (rem + ciphering.BlockSize - 1) / ciphering.BlockSize * ciphering.BlockSize
	rest := make([]byte, blocks)
	if _, err = io.ReadFull(d.transport, rest); err != nil {
		d.fail()
		return nil, fmt.Errorf("unable to receive answer: %w", err)
	}
	rest, err = d.cipher.Decrypt(rest)
	if err != nil {
		d.fail()
		return nil, err
	}
	return append(data, rest...), nil
}
