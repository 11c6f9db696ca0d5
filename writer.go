// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"
)

// Writer compresses a byte stream into the Huffman stream format.
//
// Static coding needs the symbol frequencies of the entire input before any
// codeword can be assigned, so Write only buffers; the whole stream, header
// and payload, is produced by Close in a single write to the underlying
// writer. No partial output accompanies an error.
type Writer struct {
	wr  io.Writer // Underlying writer
	buf []byte    // Raw input buffered until Close
	cnt int64     // Total number of bytes written to wr
	err error     // Persistent error

	// These fields are lazily allocated and reused for efficiency.
	enc Encoder
	bb  bits.Buffer
}

// NewWriter creates a new Writer compressing to wr.
func NewWriter(wr io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(wr)
	return hw
}

// InputCount reports the number of raw bytes buffered so far.
func (hw *Writer) InputCount() int64 { return int64(len(hw.buf)) }

// WriteCount reports the number of bytes written to the underlying writer.
func (hw *Writer) WriteCount() int64 { return hw.cnt }

// Write buffers the given bytes for encoding upon Close.
func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	hw.buf = append(hw.buf, buf...)
	return len(buf), nil
}

// WriteByte buffers a single byte for encoding upon Close.
func (hw *Writer) WriteByte(val byte) error {
	if hw.err != nil {
		return hw.err
	}
	hw.buf = append(hw.buf, val)
	return nil
}

// Close encodes all buffered input and writes the complete stream to the
// underlying writer. The Writer cannot be used afterwards until Reset.
func (hw *Writer) Close() error {
	if hw.err != nil {
		return hw.err
	}
	wrCnt, err := hw.encodeStream(hw.wr, hw.buf)
	hw.cnt += int64(wrCnt)
	if err != nil {
		hw.err = err
		return err
	}
	hw.err = errClosed
	return nil
}

// Reset resets the Writer with a new io.Writer.
func (hw *Writer) Reset(wr io.Writer) {
	hw.wr, hw.cnt, hw.err = wr, 0, nil
	hw.buf = hw.buf[:0]
	hw.bb.Reset()
}

// encodeStream encodes data as one complete stream: header, then payload
// padded to a byte boundary. The count returned is the number of bytes
// written to wr.
//
// The only state that this function depends on in hw is hw.enc and hw.bb.
// It reuses these objects for efficiency purposes.
func (hw *Writer) encodeStream(wr io.Writer, data []byte) (cnt int, err error) {
	defer errs.Recover(&err)

	ft := ComputeFreqs(data)
	hw.enc.Init(ft)

	bb := &hw.bb
	bb.Reset()

	// Encode header.
	var arr [8]byte
	bb.Write([]byte(hdrMagic))
	binary.LittleEndian.PutUint16(arr[:2], uint16(ft.NumSymbols()))
	bb.Write(arr[:2])
	for sym := 0; sym < maxSymbols; sym++ {
		if ft[sym] == 0 {
			continue
		}
		arr[0] = byte(sym)
		binary.LittleEndian.PutUint32(arr[1:5], ft[sym])
		bb.Write(arr[:5])
	}
	binary.LittleEndian.PutUint64(arr[:8], hw.enc.BitLen())
	bb.Write(arr[:8])

	// Encode payload.
	errs.Panic(hw.enc.Encode(bb, data))
	bb.WriteBits(0, numPads(int(bb.BitsWritten())))

	errs.Assert(bb.WriteAligned(), ErrCorrupt) // This should never occur
	return wr.Write(bb.Bytes())                // Final write deals with IO errors
}
