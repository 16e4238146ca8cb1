package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	bio "github.com/mmushfiq/bio-object-logic"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a bio binary frame back into a JSON object",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := decodeFrame()
		if err != nil {
			return err
		}

		switch v := rec.(type) {
		case bio.Record:
			return writeJSON(recordToJSON(v))
		case bio.RecordArray:
			out := make([]map[string]any, len(v))
			for i, r := range v {
				out[i] = recordToJSON(r)
			}
			return writeJSON(out)
		case bio.RecordList:
			out := make([]map[string]any, len(v))
			for i, r := range v {
				out[i] = recordToJSON(r)
			}
			return writeJSON(out)
		default:
			return fmt.Errorf("decode returned unexpected type %T", rec)
		}
	},
}

// decodeFrame reads and decodes one frame, logging the outcome.
func decodeFrame() (any, error) {
	in, err := openInput()
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	frame, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	c, err := buildCodec()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rec, err := c.Decode(frame)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	logger.decodeResult(timedResult{bytesIn: len(frame), elapsed: time.Since(start)}, activeFlags())
	return rec, nil
}

func writeJSON(v any) error {
	out, err := openOutput()
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
