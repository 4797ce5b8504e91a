// scn - scene-script codec CLI tool
//
// Usage:
//
//	scn validate [file]                 Decode a document and report its shape
//	scn roundtrip [file]                Decode, re-encode and compare byte trees
//	scn convert --to json|msgpack [file]  Convert between serializations
//	scn version                         Print version info
//
// Input and output files ending in .gz or .zst are (de)compressed
// transparently. If no file is given, reads from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yuzutools/scn"
	zaplog "github.com/yuzutools/scn/log/zap"
)

const version = "0.3.0"

var (
	flagFrom     string
	flagTo       string
	flagOut      string
	flagParallel int
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:           "scn",
		Short:         "Scene-script codec: validate, round-trip and convert documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagFrom, "from", "", "input serialization (json or msgpack); default guesses from the file name")
	root.PersistentFlags().IntVar(&flagParallel, "parallel", 1, "decode up to N scenes concurrently")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log fallback diagnostics to stderr")

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Decode a document and report its shape",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	roundtrip := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Decode, re-encode and verify the output tree matches the input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRoundtrip,
	}

	convert := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a document between serializations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}
	convert.Flags().StringVar(&flagTo, "to", "json", "output serialization (json or msgpack)")
	convert.Flags().StringVarP(&flagOut, "output", "o", "", "output file; default stdout")

	root.AddCommand(validate, roundtrip, convert)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scn: %v\n", err)
		os.Exit(1)
	}
}

func decodeOptions() ([]scn.DecodeOption, func()) {
	opts := []scn.DecodeOption{scn.WithParallelism(flagParallel)}
	cleanup := func() {}
	if flagVerbose {
		zl, err := zap.NewDevelopment()
		if err == nil {
			opts = append(opts, scn.WithLogger(zaplog.ZapLogger{L: zl}))
			cleanup = func() { _ = zl.Sync() }
		}
	}
	return opts, cleanup
}

func runValidate(cmd *cobra.Command, args []string) error {
	v, err := readDocument(args)
	if err != nil {
		return err
	}
	opts, cleanup := decodeOptions()
	defer cleanup()
	doc, err := scn.DecodeDocument(v, opts...)
	if err != nil {
		return err
	}
	lines := 0
	for _, sc := range doc.Scenes {
		lines += len(sc.Lines)
	}
	fmt.Printf("%s: %d scenes, %d lines, hash %s\n", doc.Name, len(doc.Scenes), lines, doc.Hash)
	return nil
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	v, err := readDocument(args)
	if err != nil {
		return err
	}
	opts, cleanup := decodeOptions()
	defer cleanup()
	doc, err := scn.DecodeDocument(v, opts...)
	if err != nil {
		return err
	}
	if out := scn.EncodeDocument(doc); !out.Equal(v) {
		return fmt.Errorf("round trip mismatch")
	}
	fmt.Println("round trip ok")
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := readDocument(args)
	if err != nil {
		return err
	}
	opts, cleanup := decodeOptions()
	defer cleanup()
	// Full decode validates the document; conversion re-encodes the typed
	// tree rather than passing the raw value through.
	doc, err := scn.DecodeDocument(v, opts...)
	if err != nil {
		return err
	}
	out := scn.EncodeDocument(doc)

	var data []byte
	switch flagTo {
	case "json":
		data, err = scn.ToJSONIndent(out, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "msgpack":
		data, err = scn.ToMsgpack(out)
	default:
		return fmt.Errorf("unknown output serialization %q", flagTo)
	}
	if err != nil {
		return err
	}
	return writeOutput(flagOut, data)
}

// readDocument reads the input file (or stdin), decompressing and
// deserializing by file extension unless --from overrides.
func readDocument(args []string) (*scn.Value, error) {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	var in io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	in, name, err := decompress(in, name)
	if err != nil {
		return nil, err
	}
	format := flagFrom
	if format == "" {
		format = "json"
		if strings.HasSuffix(name, ".mp") || strings.HasSuffix(name, ".msgpack") {
			format = "msgpack"
		}
	}
	switch format {
	case "json":
		return scn.FromJSON(in)
	case "msgpack":
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return scn.FromMsgpack(data)
	}
	return nil, fmt.Errorf("unknown input serialization %q", format)
}

// decompress wraps in when the file name carries a compression extension and
// returns the name with that extension stripped.
func decompress(in io.Reader, name string) (io.Reader, string, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		r, err := gzip.NewReader(in)
		if err != nil {
			return nil, "", err
		}
		return r, strings.TrimSuffix(name, ".gz"), nil
	case strings.HasSuffix(name, ".zst"):
		r, err := zstd.NewReader(in)
		if err != nil {
			return nil, "", err
		}
		return r.IOReadCloser(), strings.TrimSuffix(name, ".zst"), nil
	}
	return in, name, nil
}

func writeOutput(name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	var buf bytes.Buffer
	switch {
	case strings.HasSuffix(name, ".gz"):
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	case strings.HasSuffix(name, ".zst"):
		w, err := zstd.NewWriter(&buf)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return os.WriteFile(name, data, 0o644)
}
