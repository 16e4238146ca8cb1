package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a JSON object into a bio binary frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput()
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer in.Close()

		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("parse JSON: %w", err)
		}

		rec, err := jsonToRecord(obj)
		if err != nil {
			return fmt.Errorf("build record: %w", err)
		}

		c, err := buildCodec()
		if err != nil {
			return err
		}

		start := time.Now()
		frame, err := c.Encode(rec)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		out, err := openOutput()
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer out.Close()

		if _, err := out.Write(frame); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		logger.encodeResult(timedResult{bytesIn: len(raw), bytesOut: len(frame), elapsed: time.Since(start)}, activeFlags())
		return nil
	},
}

func activeFlags() []string {
	var flags []string
	if globalFlags.Compressed {
		flags = append(flags, "compressed")
	}
	if globalFlags.Encrypted {
		flags = append(flags, "encrypted")
	}
	if globalFlags.Lossless {
		flags = append(flags, "lossless")
	}
	if globalFlags.Validated {
		flags = append(flags, "validated")
	}
	return flags
}
