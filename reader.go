// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"
	"github.com/dsnet/golib/ioutil"
)

// The actual read interface needed by NewReader.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader decompresses a Huffman stream produced by Writer.
//
// The format is a single self-describing block, so the Reader decodes the
// entire stream upon first use and then serves the decoded bytes. All
// structural validation happens before any decoded byte is returned.
type Reader struct {
	rd      byteReader // Underlying reader
	cnt     int64      // Total number of bytes read from rd
	buf     []byte     // Decoded data yet to be consumed
	err     error      // Persistent error
	fetched bool       // Whether the stream has been decoded

	// These fields are lazily allocated and reused for efficiency.
	dec Decoder
	brd ioutil.ByteReader
	br  bits.Reader
}

// NewReader creates a new Reader decompressing from rd.
func NewReader(rd io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(rd)
	return hr
}

// ReadCount reports the number of bytes read from the underlying reader.
func (hr *Reader) ReadCount() int64 { return hr.cnt }

// Read reads decompressed bytes.
func (hr *Reader) Read(buf []byte) (int, error) {
	if err := hr.fetch(); err != nil && len(hr.buf) == 0 {
		return 0, err
	}
	if len(hr.buf) == 0 {
		return 0, io.EOF
	}
	cpCnt := copy(buf, hr.buf)
	hr.buf = hr.buf[cpCnt:]
	return cpCnt, nil
}

// ReadByte reads the next decompressed byte.
func (hr *Reader) ReadByte() (byte, error) {
	if err := hr.fetch(); err != nil && len(hr.buf) == 0 {
		return 0, err
	}
	if len(hr.buf) == 0 {
		return 0, io.EOF
	}
	val := hr.buf[0]
	hr.buf = hr.buf[1:]
	return val, nil
}

// Reset resets the Reader with a new io.Reader.
func (hr *Reader) Reset(rd io.Reader) {
	// For efficiency, rd should satisfy the io.ByteReader interface as well.
	// Otherwise, it will wrap the input with a single byte buffer reader.
	brd, ok := rd.(byteReader)
	if !ok {
		hr.brd.Reader = rd
		brd = &hr.brd
	}

	hr.rd, hr.cnt = brd, 0
	hr.buf, hr.err, hr.fetched = nil, nil, false
	hr.br.Reset(nil)
}

// fetch decodes the whole stream on first use.
func (hr *Reader) fetch() error {
	if hr.fetched {
		return hr.err
	}
	hr.fetched = true

	var rdCnt int
	hr.buf, rdCnt, hr.err = hr.decodeStream(hr.rd)
	hr.cnt += int64(rdCnt)
	if hr.err == nil {
		hr.err = io.EOF
	}
	return hr.err
}

// decodeStream decodes one complete stream: the header is parsed and
// validated, the code tree is rebuilt from the frequency table, and the
// payload is walked bit by bit. The count returned is the number of bytes
// read from rd. This returns io.EOF if and only if no bytes are read at all.
//
// The only state that this function depends on in hr is hr.dec and hr.br.
// It reuses these objects for efficiency purposes.
func (hr *Reader) decodeStream(rd io.ByteReader) (data []byte, cnt int, err error) {
	defer errs.Recover(&err)

	br := &hr.br
	br.Reset(rd)
	defer func() { cnt = int(br.BytesRead()) }()

	// Decode header.
	magic, _, magicErr := br.ReadBits(8)
	errs.Panic(magicErr) // io.EOF here means an empty source
	errs.Assert(byte(magic) == hdrMagic[0], ErrCorrupt)
	errs.Assert(byte(readBits(br, 8)) == hdrMagic[1], ErrCorrupt)

	numSyms := int(readBits(br, 16))
	errs.Assert(numSyms <= maxSymbols, ErrCorrupt)

	var ft FreqTable
	last := -1
	for i := 0; i < numSyms; i++ {
		sym := int(readBits(br, 8))
		count := uint32(readBits(br, 32))
		errs.Assert(sym > last, ErrCorrupt) // Entries strictly ascending
		errs.Assert(count > 0, ErrCorrupt)
		ft[sym] = count
		last = sym
	}
	bitLen := uint64(readBits(br, 32)) | uint64(readBits(br, 32))<<32

	if numSyms == 0 {
		errs.Assert(bitLen == 0, ErrCorrupt)
		return nil, 0, nil
	}

	// The header and payload must be mutually consistent: the payload of a
	// table with these counts has exactly sum(count*len) bits. Anything
	// else is a truncated or tampered stream.
	hr.dec.Init(&ft)
	ct := hr.dec.tree.CodeTable()
	var expectBits uint64
	for sym, c := range ct {
		expectBits += uint64(ft[sym]) * uint64(c.Len)
	}
	errs.Assert(bitLen == expectBits, ErrCorrupt)
	total := ft.Total()

	// Decode payload. The walk is driven by the declared bit length, never
	// by byte alignment, so padding bits cannot masquerade as codewords.
	// Note that the output allocation grows with the bits actually present
	// in the stream, not with what the header claims.
	root := hr.dec.tree.root
	rem := bitLen
	for rem > 0 {
		n := root
		if n.leaf {
			readBit(br) // Lone-symbol code: any bit value emits the symbol
			rem--
		}
		for !n.leaf {
			errs.Assert(rem > 0, ErrCorrupt) // Stream ended mid-codeword
			if readBit(br) {
				n = n.right
			} else {
				n = n.left
			}
			rem--
		}
		data = append(data, n.sym)
	}
	errs.Assert(uint64(len(data)) == total, ErrCorrupt)

	// Decode footer: padding bits must be zero.
	if pads := numPads(int(bitLen % 8)); pads > 0 {
		errs.Assert(readBits(br, pads) == 0, ErrCorrupt)
	}
	errs.Assert(br.ReadAligned(), ErrCorrupt)
	return data, 0, nil
}

// readBits reads multiple header bits.
// This function panics if an error occurs.
func readBits(br bits.BitsReader, num int) uint {
	val, _, err := br.ReadBits(num)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		panic(err)
	}
	return val
}

// readBit reads a single payload bit, treating stream exhaustion as
// truncation. This function panics if an error occurs.
func readBit(br bits.BitsReader) bool {
	bit, err := br.ReadBit()
	if err != nil {
		if err == io.EOF {
			err = ErrCorrupt
		}
		panic(err)
	}
	return bit
}
