// Command biocodec is a thin CLI over the bio binary codec, operating on
// schema-less properties records (dictionary=0) since a compiled dictionary
// is a Go-side registration, not something this binary can load at runtime.
// It exists to exercise the codec end to end from the shell: round-trip a
// JSON object through the wire format, optionally compressed/encrypted/
// lossless, and inspect an encoded frame's structure.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	bio "github.com/mmushfiq/bio-object-logic"
)

// GlobalFlags mirrors the codec's four Option booleans plus an optional
// hex-encoded encryption secret (spec.md §6.4).
type GlobalFlags struct {
	Compressed bool
	Encrypted  bool
	Lossless   bool
	Validated  bool
	KeyHex     string
	Input      string
	Output     string
	Verbose    bool
}

var (
	globalFlags GlobalFlags
	logger      zerologLogger
)

var rootCmd = &cobra.Command{
	Use:   "biocodec",
	Short: "Encode, decode, and inspect bio binary frames",
	Long: `biocodec is a command-line client for the bio binary wire codec.

It reads a JSON object from stdin (or --input), encodes it as a
schema-less properties record, and writes the resulting frame to stdout
(or --output). decode and dump reverse the process.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(globalFlags.Verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Compressed, "compressed", false, "enable zstd compression (FlagCompressed)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Encrypted, "encrypted", false, "enable AEAD encryption (FlagEncrypted); requires --key")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Lossless, "lossless", false, "route through the XML bridge instead of the binary record codec (FlagXML)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Validated, "validated", false, "fail on unknown dictionary/object instead of silently omitting")
	rootCmd.PersistentFlags().StringVar(&globalFlags.KeyHex, "key", "", "hex-encoded encryption secret, required with --encrypted")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Input, "input", "i", "", "input file (default: stdin)")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Output, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "log codec events to stderr")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "biocodec: %v\n", err)
		os.Exit(1)
	}
}

// buildCodec assembles a *bio.Codec from the global flags.
func buildCodec() (*bio.Codec, error) {
	opts := []bio.Option{
		bio.WithCompressed(globalFlags.Compressed),
		bio.WithLossless(globalFlags.Lossless),
		bio.WithValidated(globalFlags.Validated),
	}
	if globalFlags.Encrypted {
		if globalFlags.KeyHex == "" {
			return nil, fmt.Errorf("--encrypted requires --key")
		}
		secret, err := decodeHexKey(globalFlags.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("decode --key: %w", err)
		}
		enc, err := bio.NewAEADEncrypter(secret)
		if err != nil {
			return nil, fmt.Errorf("build encrypter: %w", err)
		}
		opts = append(opts, bio.WithEncrypted(true), bio.WithEncrypter(enc))
	}
	return bio.NewCodec(opts...), nil
}

func openInput() (*os.File, error) {
	if globalFlags.Input == "" {
		return os.Stdin, nil
	}
	return os.Open(globalFlags.Input)
}

func openOutput() (*os.File, error) {
	if globalFlags.Output == "" {
		return os.Stdout, nil
	}
	return os.Create(globalFlags.Output)
}

type timedResult struct {
	bytesIn  int
	bytesOut int
	elapsed  time.Duration
}
