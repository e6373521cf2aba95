package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/postal"
	"github.com/streetdivider/internal/ranges"
)

type parseOutput struct {
	Input        string             `json:"input"`
	Location     *divider.Location  `json:"location,omitempty"`
	HouseNumbers []string           `json:"house_numbers,omitempty"`
	Postal       *postal.Components `json:"postal,omitempty"`
	Agreement    *postal.Agreement  `json:"agreement,omitempty"`
	Error        string             `json:"error,omitempty"`
}

func createParseCmd(settings *config.Settings) *cobra.Command {
	var withPostal, debugMode, asJSON, expand bool

	cmd := &cobra.Command{
		Use:   "parse [address...]",
		Short: "Split addresses given as arguments or on stdin",
		Long: `Split each address into street, house number and affix. Without arguments
one address per line is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDivider(cmd.Context(), settings)
			if err != nil {
				return err
			}
			d.Debug = debugMode

			addresses := args
			if len(addresses) == 0 {
				if addresses, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			if withPostal && !postal.Available {
				logger.Warn("libpostal cross-check skipped", "error", postal.ErrUnavailable)
				withPostal = false
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, address := range addresses {
				res := parseOne(d, address, withPostal, expand)
				if asJSON {
					if err := enc.Encode(res); err != nil {
						return err
					}
					continue
				}
				printParseOutput(out, res)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withPostal, "postal", false, "also show libpostal's reading (needs -tags libpostal)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "trace every parsing decision")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per address")
	cmd.Flags().BoolVar(&expand, "expand", false, "list the house numbers of a range such as 3-5")

	return cmd
}

func parseOne(d *divider.Divider, address string, withPostal, expand bool) parseOutput {
	res := parseOutput{Input: address}

	loc, err := d.Parse(address)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Location = &loc

	if expand {
		if numbers, ok := ranges.Expand(loc.HouseNumber, loc.Affix); ok {
			res.HouseNumbers = numbers
		}
	}

	if withPostal {
		components, err := postal.Parse(address)
		switch {
		case errors.Is(err, postal.ErrUnavailable):
		case err != nil:
			logger.Warn("libpostal parse failed", "input", address, "error", err)
		default:
			agreement := postal.Compare(loc.Street, loc.HouseNumber, loc.Affix, components)
			res.Postal = &components
			res.Agreement = &agreement
		}
	}
	return res
}

func printParseOutput(w io.Writer, res parseOutput) {
	if res.Error != "" {
		fmt.Fprintf(w, "%q: %s\n", res.Input, res.Error)
		return
	}
	fmt.Fprintln(w, res.Location)
	if len(res.HouseNumbers) > 0 {
		fmt.Fprintf(w, "  house numbers: %s\n", strings.Join(res.HouseNumbers, ", "))
	}
	if res.Postal != nil {
		fmt.Fprintf(w, "  libpostal: road=%q house_number=%q unit=%q\n",
			res.Postal.Road, res.Postal.HouseNumber, res.Postal.Unit)
	}
	if res.Agreement != nil {
		fmt.Fprintf(w, "  street: %s\n  house number: %s\n",
			res.Agreement.Street.Reason, res.Agreement.HouseNumber.Reason)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading addresses: %w", err)
	}
	return lines, nil
}
