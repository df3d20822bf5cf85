package cli

import "github.com/urfave/cli/v3"

// joinFlags concatenates the flag groups of each config section
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
