package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	bio "github.com/mmushfiq/bio-object-logic"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a bio binary frame's flags and decoded field structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput()
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer in.Close()

		frame, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if len(frame) < 1 {
			return fmt.Errorf("empty frame")
		}

		out, err := openOutput()
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer out.Close()

		fmt.Fprintf(out, "flags: %s\n", describeFlags(frame[0]))

		c, err := buildCodec()
		if err != nil {
			return err
		}
		rec, err := c.Decode(frame)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		switch v := rec.(type) {
		case bio.Record:
			dumpRecord(out, v)
		case bio.RecordArray:
			fmt.Fprintf(out, "array of %d records\n", len(v))
			for i, r := range v {
				fmt.Fprintf(out, "[%d]\n", i)
				dumpRecord(out, r)
			}
		case bio.RecordList:
			fmt.Fprintf(out, "list of %d records\n", len(v))
			for i, r := range v {
				fmt.Fprintf(out, "[%d]\n", i)
				dumpRecord(out, r)
			}
		}
		return nil
	},
}

func dumpRecord(out io.Writer, rec bio.Record) {
	fmt.Fprintf(out, "  record dictionary=%d code=%d version=%d name=%q\n",
		rec.BioDictionary(), rec.BioCode(), rec.BioVersion(), rec.BioName())
	for _, key := range rec.Keys() {
		v, _ := rec.Get(key)
		fmt.Fprintf(out, "    %s = %v (%T)\n", key, v, v)
	}
}

func describeFlags(flag byte) string {
	var parts []string
	if flag&bio.FlagCompressed != 0 {
		parts = append(parts, "compressed")
	}
	if flag&bio.FlagArray != 0 {
		parts = append(parts, "array")
	}
	if flag&bio.FlagList != 0 {
		parts = append(parts, "list")
	}
	if flag&bio.FlagEncrypted != 0 {
		parts = append(parts, "encrypted")
	}
	if flag&bio.FlagXML != 0 {
		parts = append(parts, "xml")
	}
	if len(parts) == 0 {
		return "none"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "," + p
	}
	return out
}
