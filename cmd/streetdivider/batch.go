package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/streets"
)

var batchHeader = []string{"input", "street", "house_number", "affix", "error"}

func createBatchCmd(settings *config.Settings) *cobra.Command {
	var encoding string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [filename]",
		Short: "Split one address per line and write CSV to stdout",
		Long: `Split every line of a file ("-" for stdin) and write
input,street,house_number,affix,error rows to stdout. Blank lines are reported
as errors so that row numbers match the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDivider(cmd.Context(), settings)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			lines, err := readBatch(in, encoding)
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := d.ParseAll(cmd.Context(), lines, workers)
			if err != nil {
				return fmt.Errorf("batch aborted: %w", err)
			}
			logger.Info("batch parsed", "lines", len(lines), "workers", workers, "elapsed", time.Since(start))

			return writeBatch(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "input encoding (utf-8, latin1, windows-1252)")
	cmd.Flags().IntVar(&workers, "workers", settings.Workers, "number of parsing workers")

	return cmd
}

// readBatch decodes r and returns its lines, keeping blank ones.
func readBatch(r io.Reader, encoding string) ([]string, error) {
	decoded, err := streets.DecodeReader(r, encoding)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return lines, nil
}

func writeBatch(w io.Writer, results []divider.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(batchHeader); err != nil {
		return err
	}

	for _, res := range results {
		record := []string{res.Input, "", "", "", ""}
		if res.Err != nil {
			record[4] = res.Err.Error()
		} else {
			record[1] = res.Location.Street
			if res.Location.HasHouseNumber() {
				record[2] = strconv.Itoa(res.Location.HouseNumber)
			}
			record[3] = res.Location.Affix
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
