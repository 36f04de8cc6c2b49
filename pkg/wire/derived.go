// Copyright 2026 The ofwire Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

// Derived accessors for the fixed-width composite fields of the protocol,
// built on the scalar and byte-run codecs. The name fields are
// fixed-length, NUL-padded character arrays on the wire; they are exposed
// as raw byte arrays here since padding policy belongs to the object layer.

// Fixed field widths on the wire.
const (
	MACLen       = 6
	IPv6Len      = 16
	PortNameLen  = 16
	TableNameLen = 32
	SerialNumLen = 32
	Str64Len     = 64
	DescStrLen   = 256
)

// MAC reads the 6-byte MAC address at offset.
func (b *Buffer) MAC(offset int) ([MACLen]byte, error) {
	var mac [MACLen]byte
	err := b.ReadBytes(offset, mac[:])
	return mac, err
}

// PutMAC writes a 6-byte MAC address at offset.
func (b *Buffer) PutMAC(offset int, mac [MACLen]byte) error {
	return b.PutBytes(offset, mac[:])
}

// IPv4 reads the IPv4 address at offset. An IPv4 address is wire-identical
// to a 32-bit scalar.
func (b *Buffer) IPv4(offset int) (uint32, error) {
	return b.Uint32(offset)
}

// PutIPv4 writes an IPv4 address at offset.
func (b *Buffer) PutIPv4(offset int, addr uint32) error {
	return b.PutUint32(offset, addr)
}

// IPv6 reads the 16-byte IPv6 address at offset.
func (b *Buffer) IPv6(offset int) ([IPv6Len]byte, error) {
	var addr [IPv6Len]byte
	err := b.ReadBytes(offset, addr[:])
	return addr, err
}

// PutIPv6 writes a 16-byte IPv6 address at offset.
func (b *Buffer) PutIPv6(offset int, addr [IPv6Len]byte) error {
	return b.PutBytes(offset, addr[:])
}

// PortName reads the fixed-length port name field at offset.
func (b *Buffer) PortName(offset int) ([PortNameLen]byte, error) {
	var name [PortNameLen]byte
	err := b.ReadBytes(offset, name[:])
	return name, err
}

// PutPortName writes the fixed-length port name field at offset.
func (b *Buffer) PutPortName(offset int, name [PortNameLen]byte) error {
	return b.PutBytes(offset, name[:])
}

// TableName reads the fixed-length table name field at offset.
func (b *Buffer) TableName(offset int) ([TableNameLen]byte, error) {
	var name [TableNameLen]byte
	err := b.ReadBytes(offset, name[:])
	return name, err
}

// PutTableName writes the fixed-length table name field at offset.
func (b *Buffer) PutTableName(offset int, name [TableNameLen]byte) error {
	return b.PutBytes(offset, name[:])
}

// SerialNum reads the fixed-length serial number field at offset.
func (b *Buffer) SerialNum(offset int) ([SerialNumLen]byte, error) {
	var sn [SerialNumLen]byte
	err := b.ReadBytes(offset, sn[:])
	return sn, err
}

// PutSerialNum writes the fixed-length serial number field at offset.
func (b *Buffer) PutSerialNum(offset int, sn [SerialNumLen]byte) error {
	return b.PutBytes(offset, sn[:])
}

// DescStr reads the fixed-length description string field at offset.
func (b *Buffer) DescStr(offset int) ([DescStrLen]byte, error) {
	var desc [DescStrLen]byte
	err := b.ReadBytes(offset, desc[:])
	return desc, err
}

// PutDescStr writes the fixed-length description string field at offset.
func (b *Buffer) PutDescStr(offset int, desc [DescStrLen]byte) error {
	return b.PutBytes(offset, desc[:])
}

// Bitmap128 is a 128-bit bitmap, stored on the wire as two big-endian
// 64-bit words, high word first. Checksum fields share the layout.
type Bitmap128 struct {
	Hi, Lo uint64
}

// Bitmap128 reads the 128-bit bitmap at offset.
func (b *Buffer) Bitmap128(offset int) (Bitmap128, error) {
	hi, err := b.Uint64(offset)
	if err != nil {
		return Bitmap128{}, err
	}
	lo, err := b.Uint64(offset + 8)
	if err != nil {
		return Bitmap128{}, err
	}
	return Bitmap128{Hi: hi, Lo: lo}, nil
}

// PutBitmap128 writes the 128-bit bitmap at offset. The bounds check covers
// both words before either is written.
func (b *Buffer) PutBitmap128(offset int, bmap Bitmap128) error {
	if err := b.access(offset, 16); err != nil {
		return err
	}
	if err := b.PutUint64(offset, bmap.Hi); err != nil {
		return err
	}
	return b.PutUint64(offset+8, bmap.Lo)
}
