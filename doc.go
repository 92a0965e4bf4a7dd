// Package huffman implements a self-describing Huffman compressor for byte
// buffers.  The code tree is built from byte frequencies with a stable
// priority queue, serialized in pre-order ahead of the payload, and the whole
// stream is packed MSB-first into bytes.
//
// Compressed layout:
//
//     byte 0      pad count (0..7)
//     bits        pre-order tree: "1" + 8-bit literal for a leaf,
//                 "0" + left subtree + right subtree for an internal node
//     bits        root-to-leaf code of every input byte, in input order
//     bits        pad count zero bits up to a byte boundary
//
// The bit-level container used by this package lives in the bitfield
// subpackage.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
