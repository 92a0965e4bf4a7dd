// Package bitfield implements Bitfield, a growable sequence of bits with an
// explicit endianness.  The endianness never reorders the stored bits by
// itself; it only decides which end is the most significant when padding,
// trimming, or converting to and from bytes and fixed-width integers.
//
// Byte layout:
//
//     LittleEndian: byte k, bit j (value 1<<j)     <=> index 8k+j
//     BigEndian:    byte k, bit 7-j (MSB first)    <=> index 8k+j
//
// The BigEndian layout is the usual MSB-first bit stream, so a BigEndian
// Bitfield can be written to and read from a byte buffer in stream order.
//
package bitfield
