package huffman

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/huffman/v2/bitfield"
)

// Compressor compresses and decompresses whole byte buffers.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Codec is a Huffman Compressor.  It holds no per-call state, so one Codec
// may be used from many goroutines at once.
type Codec struct {
	logger      *zap.Logger
	concurrency int
}

var _ Compressor = (*Codec)(nil)

var defaultCodec = &Codec{logger: zap.NewNop(), concurrency: 1}

// New returns a Codec configured by opts.
func New(opts ...OptionFunc) (*Codec, error) {
	o := defaultOption()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Codec{logger: o.logger, concurrency: o.concurrency}, nil
}

// Compress compresses data with a default Codec.
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data)
}

// Decompress decompresses data with a default Codec.
func Decompress(data []byte) ([]byte, error) {
	return defaultCodec.Decompress(data)
}

// Compress returns the Huffman-coded form of data.  An empty input yields the
// single byte 0x00.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	var e Encoder
	e.Init(CountFrequencies(data))

	tree := bitfield.New(bitfield.BigEndian)
	if root := e.Root(); root != nil {
		writeTree(tree, root)
	}

	payload := bitfield.New(bitfield.BigEndian)
	for _, b := range data {
		payload.AddBools(e.Encode(b)...)
	}

	padCount := (8 - (tree.Len()+payload.Len())%8) % 8

	stream := bitfield.New(bitfield.BigEndian)
	for _, part := range []*bitfield.Bitfield{bitfield.FromByte(byte(padCount)), tree, payload} {
		if err := stream.Append(part); err != nil {
			return nil, errors.Wrap(err, "assemble stream")
		}
	}
	for i := 0; i < padCount; i++ {
		stream.Add(false)
	}

	out, err := stream.ToByteArray(stream.Len(), 0)
	if err != nil {
		return nil, errors.Wrap(err, "pack stream")
	}

	c.logger.Debug("huffman compress",
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(out)),
		zap.Int("symbols", e.NumSymbols()),
		zap.Int("tree_bits", tree.Len()),
		zap.Int("payload_bits", payload.Len()),
		zap.Int("pad_bits", padCount),
	)
	return out, nil
}

// Decompress reverses Compress.  Malformed input fails with ErrCorruptData
// and no output.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, corrupt("missing pad count header")
	}
	padCount := int(data[0])
	if padCount > 7 {
		return nil, corrupt("pad count %d out of range", padCount)
	}

	bits, err := bitfield.FromByteArrayBigEndian(data)
	if err != nil {
		return nil, errors.Wrap(err, "unpack stream")
	}
	if err := bits.TrimStartN(8); err != nil {
		return nil, errors.Wrap(err, "strip header")
	}
	if err := bits.TrimEndN(padCount); err != nil {
		return nil, corrupt("pad count %d exceeds %d available bits", padCount, bits.Len())
	}

	out := []byte{}
	if bits.Len() == 0 {
		c.logger.Debug("huffman decompress", zap.Int("input_bytes", len(data)), zap.Int("output_bytes", 0))
		return out, nil
	}

	r := bitfield.NewReader(bits)
	root, err := readTree(r)
	if err != nil {
		return nil, err
	}

	var d Decoder
	d.Init(root)
	treeBits := r.Offset()
	for r.Remaining() > 0 {
		symbol, err := d.Decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol)
	}

	c.logger.Debug("huffman decompress",
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(out)),
		zap.Int("symbols", d.NumSymbols()),
		zap.Int("tree_bits", treeBits),
		zap.Int("pad_bits", padCount),
	)
	return out, nil
}

// CompressAll compresses every buffer in inputs, up to the configured
// concurrency at a time.  The results keep the order of inputs.  The first
// failure cancels the remaining work.
func (c *Codec) CompressAll(ctx context.Context, inputs [][]byte) ([][]byte, error) {
	return c.each(ctx, "compress", inputs, c.Compress)
}

// DecompressAll decompresses every buffer in inputs, like CompressAll.
func (c *Codec) DecompressAll(ctx context.Context, inputs [][]byte) ([][]byte, error) {
	return c.each(ctx, "decompress", inputs, c.Decompress)
}

func (c *Codec) each(ctx context.Context, op string, inputs [][]byte, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	out := make([][]byte, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := fn(in)
			if err != nil {
				c.logger.Debug("huffman batch item failed", zap.String("op", op), zap.Int("index", i), zap.Error(err))
				return errors.Wrapf(err, "%s input %d", op, i)
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
